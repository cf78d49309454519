package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollUpload is a row of payroll_uploads. Records is the JSONB array of
// payroll rows keyed by their column names.
type PayrollUpload struct {
	UploadID     string     `db:"upload_id"`
	Filename     string     `db:"filename"`
	Records      []byte     `db:"records"`
	TotalRecords int        `db:"total_records"`
	UploadedAt   time.Time  `db:"uploaded_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	UploadedBy   *string    `db:"uploaded_by"`
}

// PayrollPeriodTotals is a row of payroll_period_totals.
type PayrollPeriodTotals struct {
	UploadID              string          `db:"upload_id"`
	Period                string          `db:"period"`
	ProductionGross       decimal.Decimal `db:"production_gross"`
	ProductionCharges     decimal.Decimal `db:"production_charges"`
	ProductionSupplements decimal.Decimal `db:"production_supplements"`
	AdminGross            decimal.Decimal `db:"admin_gross"`
	AdminCharges          decimal.Decimal `db:"admin_charges"`
	AdminSupplements      decimal.Decimal `db:"admin_supplements"`
}
