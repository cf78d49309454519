package fec

import (
	"sort"
	"strconv"
	"strings"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

const (
	maxSampleValues = 20
	maxSampleRows   = 5
)

// DiagnosePayroll reports which periods an upload covers and how its P / HP
// values are classified.
func DiagnosePayroll(upload domain.PayrollUpload) domain.PayrollDiagnostics {
	d := domain.PayrollDiagnostics{
		UploadID:        upload.UploadID,
		Filename:        upload.Filename,
		UploadedAt:      upload.UploadedAt,
		AvailableMonths: []string{},
		TotalRows:       len(upload.Records),
		SampleValues:    []string{},
		SampleRows:      []domain.PayrollSampleRow{},
	}

	months := make(map[string]struct{})
	seen := make(map[string]struct{})
	for i, r := range upload.Records {
		period := ""
		if !r.Month.IsEmpty() {
			period = NormalizePayrollPeriod(string(r.Month))
			months[period] = struct{}{}
		}

		class := ClassifyPHP(string(r.ProductionFlag))
		if class == Production {
			d.ProductionCount++
		} else {
			d.AdministrationCount++
		}

		sample := string(r.ProductionFlag) + " -> " + string(class)
		if _, ok := seen[sample]; !ok && len(d.SampleValues) < maxSampleValues {
			seen[sample] = struct{}{}
			d.SampleValues = append(d.SampleValues, sample)
		}

		if i < maxSampleRows {
			d.SampleRows = append(d.SampleRows, domain.PayrollSampleRow{
				Employee:         r.Employee.String(),
				Service:          r.Service.String(),
				RawFlag:          string(r.ProductionFlag),
				Classification:   string(class),
				GrossPay:         r.GrossPay.String(),
				EmployerCharges:  r.EmployerCharges.String(),
				RawMonth:         string(r.Month),
				NormalizedPeriod: period,
			})
		}
	}

	for m := range months {
		d.AvailableMonths = append(d.AvailableMonths, m)
	}
	sort.Strings(d.AvailableMonths)
	return d
}

// ProbePeriod runs raw through both period normalizers. When raw is a day
// serial the computed date is reported as well.
func ProbePeriod(raw string) domain.PeriodProbe {
	probe := domain.PeriodProbe{
		Input:         raw,
		LedgerPeriod:  NormalizeLedgerPeriod(raw),
		PayrollPeriod: NormalizePayrollPeriod(raw),
	}
	probe.Matches = probe.LedgerPeriod == probe.PayrollPeriod

	s := strings.TrimSpace(raw)
	if !isDigits(s) {
		return probe
	}
	serial, err := strconv.Atoi(s)
	if err != nil {
		return probe
	}
	if d, ok := ExcelSerialToDate(serial); ok {
		probe.SerialDate = &domain.SerialDate{
			Date:  d.Format("2006-01-02"),
			Day:   d.Day(),
			Month: int(d.Month()),
			Year:  d.Year(),
		}
	}
	return probe
}
