package fec

import (
	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type payrollAmounts struct {
	gross, charges, supplements decimal.Decimal
}

// readPayrollAmounts parses the three cost cells of a row. A row with any
// non-numeric cost is unusable as a whole.
func readPayrollAmounts(r domain.PayrollRecord) (payrollAmounts, bool) {
	gross, err := r.GrossPay.Decimal()
	if err != nil {
		return payrollAmounts{}, false
	}
	charges, err := r.EmployerCharges.Decimal()
	if err != nil {
		return payrollAmounts{}, false
	}
	supplements, err := r.Supplements.Decimal()
	if err != nil {
		return payrollAmounts{}, false
	}
	return payrollAmounts{gross: gross, charges: charges, supplements: supplements}, true
}

// SummarizePayroll sums one upload's costs per normalized period and per
// production / administration split. Periods are returned in the order they
// first appear in records.
func SummarizePayroll(uploadID string, records []domain.PayrollRecord) []domain.PayrollPeriodTotals {
	index := make(map[string]int)
	var out []domain.PayrollPeriodTotals
	for _, r := range records {
		amounts, ok := readPayrollAmounts(r)
		if !ok {
			continue
		}
		period := NormalizePayrollPeriod(string(r.Month))
		i, seen := index[period]
		if !seen {
			i = len(out)
			index[period] = i
			out = append(out, domain.PayrollPeriodTotals{
				UploadID:              uploadID,
				Period:                period,
				ProductionGross:       decimal.Zero,
				ProductionCharges:     decimal.Zero,
				ProductionSupplements: decimal.Zero,
				AdminGross:            decimal.Zero,
				AdminCharges:          decimal.Zero,
				AdminSupplements:      decimal.Zero,
			})
		}
		t := &out[i]
		if ClassifyPHP(string(r.ProductionFlag)) == Production {
			t.ProductionGross = t.ProductionGross.Add(amounts.gross)
			t.ProductionCharges = t.ProductionCharges.Add(amounts.charges)
			t.ProductionSupplements = t.ProductionSupplements.Add(amounts.supplements)
		} else {
			t.AdminGross = t.AdminGross.Add(amounts.gross)
			t.AdminCharges = t.AdminCharges.Add(amounts.charges)
			t.AdminSupplements = t.AdminSupplements.Add(amounts.supplements)
		}
	}
	return out
}

// hasPayrollCosts reports whether totals carry any gross pay or supplement.
// Employer charges alone do not count.
func hasPayrollCosts(t domain.PayrollPeriodTotals) bool {
	return t.ProductionGross.IsPositive() || t.AdminGross.IsPositive() ||
		t.ProductionSupplements.IsPositive() || t.AdminSupplements.IsPositive()
}

// ZeroPayroll is the aggregate used when no payroll data covers period.
func ZeroPayroll(period string) domain.PayrollAggregate {
	return domain.PayrollAggregate{Period: period}
}

// AggregatePayroll returns the payroll block for period. Uploads are walked
// in store order and the first one holding costs for period wins; uploads
// are never summed together.
func AggregatePayroll(period string, uploads [][]domain.PayrollPeriodTotals) domain.PayrollAggregate {
	for _, totals := range uploads {
		for _, t := range totals {
			if t.Period != period || !hasPayrollCosts(t) {
				continue
			}
			return domain.PayrollAggregate{
				Period:                period,
				ProductionGross:       domain.NewAmount(t.ProductionGross),
				ProductionCharges:     domain.NewAmount(t.ProductionCharges),
				ProductionSupplements: domain.NewAmount(t.ProductionSupplements),
				AdminGross:            domain.NewAmount(t.AdminGross),
				AdminCharges:          domain.NewAmount(t.AdminCharges),
				AdminSupplements:      domain.NewAmount(t.AdminSupplements),
				TotalProduction:       domain.NewAmount(t.ProductionGross.Add(t.ProductionCharges).Add(t.ProductionSupplements)),
				TotalAdmin:            domain.NewAmount(t.AdminGross.Add(t.AdminCharges).Add(t.AdminSupplements)),
			}
		}
	}
	return ZeroPayroll(period)
}

// AggregatePayrollRecords is AggregatePayroll over uploads that have not been
// summarized yet.
func AggregatePayrollRecords(period string, uploads [][]domain.PayrollRecord) domain.PayrollAggregate {
	summaries := make([][]domain.PayrollPeriodTotals, 0, len(uploads))
	for _, records := range uploads {
		summaries = append(summaries, SummarizePayroll("", records))
	}
	return AggregatePayroll(period, summaries)
}

// NotSpecified fills a Service or P / HP cell that an appended row leaves
// empty and that no earlier row of the same employee can supply.
const NotSpecified = "Non spécifié"

type rosterEntry struct {
	service, flag domain.Cell
}

// AppendPayrollRecords returns existing followed by incoming. Incoming rows
// with an empty Service or P / HP take the value from the last existing row
// of the same employee.
func AppendPayrollRecords(existing, incoming []domain.PayrollRecord) []domain.PayrollRecord {
	roster := make(map[string]rosterEntry, len(existing))
	for _, r := range existing {
		if name := r.Employee.String(); name != "" {
			roster[name] = rosterEntry{service: r.Service, flag: r.ProductionFlag}
		}
	}

	fill := func(c domain.Cell, known domain.Cell) domain.Cell {
		if !c.IsEmpty() {
			return c
		}
		if !known.IsEmpty() {
			return known
		}
		return NotSpecified
	}

	out := make([]domain.PayrollRecord, 0, len(existing)+len(incoming))
	out = append(out, existing...)
	for _, r := range incoming {
		known := roster[r.Employee.String()]
		r.Service = fill(r.Service, known.service)
		r.ProductionFlag = fill(r.ProductionFlag, known.flag)
		out = append(out, r)
	}
	return out
}
