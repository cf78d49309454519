package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/SscSPs/arp_backend/internal/models"
)

// ToModelPayrollUpload converts a domain PayrollUpload to a model
// PayrollUpload, encoding its records as JSON.
func ToModelPayrollUpload(d domain.PayrollUpload) (models.PayrollUpload, error) {
	records := d.Records
	if records == nil {
		records = []domain.PayrollRecord{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return models.PayrollUpload{}, fmt.Errorf("failed to encode payroll records: %w", err)
	}
	m := models.PayrollUpload{
		UploadID:     d.UploadID,
		Filename:     d.Filename,
		Records:      raw,
		TotalRecords: d.TotalRecords,
		UploadedAt:   d.UploadedAt,
		UpdatedAt:    d.UpdatedAt,
	}
	if d.UploadedBy != "" {
		by := d.UploadedBy
		m.UploadedBy = &by
	}
	return m, nil
}

// ToDomainPayrollUpload converts a model PayrollUpload to a domain
// PayrollUpload. Records are decoded only when present.
func ToDomainPayrollUpload(m models.PayrollUpload) (domain.PayrollUpload, error) {
	d := domain.PayrollUpload{
		UploadID:     m.UploadID,
		Filename:     m.Filename,
		TotalRecords: m.TotalRecords,
		UploadedAt:   m.UploadedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.UploadedBy != nil {
		d.UploadedBy = *m.UploadedBy
	}
	if len(m.Records) > 0 {
		if err := json.Unmarshal(m.Records, &d.Records); err != nil {
			return domain.PayrollUpload{}, fmt.Errorf("failed to decode payroll records of %s: %w", m.UploadID, err)
		}
	}
	return d, nil
}

// ToModelPayrollPeriodTotals converts domain totals to model totals
func ToModelPayrollPeriodTotals(d domain.PayrollPeriodTotals) models.PayrollPeriodTotals {
	return models.PayrollPeriodTotals{
		UploadID:              d.UploadID,
		Period:                d.Period,
		ProductionGross:       d.ProductionGross,
		ProductionCharges:     d.ProductionCharges,
		ProductionSupplements: d.ProductionSupplements,
		AdminGross:            d.AdminGross,
		AdminCharges:          d.AdminCharges,
		AdminSupplements:      d.AdminSupplements,
	}
}

// ToDomainPayrollPeriodTotals converts model totals to domain totals
func ToDomainPayrollPeriodTotals(m models.PayrollPeriodTotals) domain.PayrollPeriodTotals {
	return domain.PayrollPeriodTotals{
		UploadID:              m.UploadID,
		Period:                m.Period,
		ProductionGross:       m.ProductionGross,
		ProductionCharges:     m.ProductionCharges,
		ProductionSupplements: m.ProductionSupplements,
		AdminGross:            m.AdminGross,
		AdminCharges:          m.AdminCharges,
		AdminSupplements:      m.AdminSupplements,
	}
}
