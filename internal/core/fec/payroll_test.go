package fec_test

import (
	"testing"

	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/SscSPs/arp_backend/internal/core/fec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payrollRow(month, flag, gross, charges, supplements string) domain.PayrollRecord {
	return domain.PayrollRecord{
		Employee:        "DUPONT Jean",
		Month:           domain.Cell(month),
		ProductionFlag:  domain.Cell(flag),
		GrossPay:        domain.Cell(gross),
		EmployerCharges: domain.Cell(charges),
		Supplements:     domain.Cell(supplements),
	}
}

func aprilRows() []domain.PayrollRecord {
	return []domain.PayrollRecord{
		payrollRow("45777", "P", "2000", "800", "100"),
		payrollRow("30/04/2025", "HP", "1500", "600.55", ""),
		payrollRow("2025-03-10", "P", "999", "1", "1"),
		payrollRow("Avril 2025", "Atelier", "1000,5", "400", "0"),
		payrollRow("45777", "P", "n/a", "1", "1"),
	}
}

func TestSummarizePayroll(t *testing.T) {
	got := fec.SummarizePayroll("upload-1", aprilRows())

	require.Len(t, got, 2)
	april := got[0]
	assert.Equal(t, "upload-1", april.UploadID)
	assert.Equal(t, "Avril 2025", april.Period)
	assert.Equal(t, "3000.5", april.ProductionGross.String())
	assert.Equal(t, "1200", april.ProductionCharges.String())
	assert.Equal(t, "100", april.ProductionSupplements.String())
	assert.Equal(t, "1500", april.AdminGross.String())
	assert.Equal(t, "600.55", april.AdminCharges.String())
	assert.Equal(t, "0", april.AdminSupplements.String())

	assert.Equal(t, "Mars 2025", got[1].Period)
}

func TestAggregatePayroll(t *testing.T) {
	got := fec.AggregatePayrollRecords("Avril 2025", [][]domain.PayrollRecord{aprilRows()})

	assert.Equal(t, "Avril 2025", got.Period)
	assert.Equal(t, "3000.50", got.ProductionGross.StringFixed(2))
	assert.Equal(t, "1200.00", got.ProductionCharges.StringFixed(2))
	assert.Equal(t, "100.00", got.ProductionSupplements.StringFixed(2))
	assert.Equal(t, "1500.00", got.AdminGross.StringFixed(2))
	assert.Equal(t, "600.55", got.AdminCharges.StringFixed(2))
	assert.Equal(t, "0.00", got.AdminSupplements.StringFixed(2))
	assert.Equal(t, "4300.50", got.TotalProduction.StringFixed(2))
	assert.Equal(t, "2100.55", got.TotalAdmin.StringFixed(2))
}

func TestAggregatePayroll_FirstUploadWithCostsWins(t *testing.T) {
	chargesOnly := []domain.PayrollRecord{payrollRow("15/04/2025", "P", "0", "100", "0")}
	first := []domain.PayrollRecord{payrollRow("15/04/2025", "P", "10", "0", "0")}
	second := []domain.PayrollRecord{payrollRow("15/04/2025", "P", "20", "0", "0")}

	got := fec.AggregatePayrollRecords("Avril 2025", [][]domain.PayrollRecord{chargesOnly, first, second})

	assert.Equal(t, "10.00", got.ProductionGross.StringFixed(2))
	assert.True(t, got.ProductionCharges.IsZero())
}

func TestAggregatePayroll_NoMatch(t *testing.T) {
	got := fec.AggregatePayrollRecords("Juin 2025", [][]domain.PayrollRecord{aprilRows()})

	assert.Equal(t, fec.ZeroPayroll("Juin 2025"), got)
	assert.Equal(t, "0.00", got.TotalProduction.StringFixed(2))
}

func TestAggregatePayroll_NoUploads(t *testing.T) {
	got := fec.AggregatePayroll("Avril 2025", nil)

	assert.True(t, got.TotalAdmin.IsZero())
	assert.Equal(t, "Avril 2025", got.Period)
}

func TestAppendPayrollRecords(t *testing.T) {
	existing := []domain.PayrollRecord{
		{Employee: "DUPONT Jean", Service: "Atelier", ProductionFlag: "P"},
		{Employee: "MARTIN Anne", Service: "Compta", ProductionFlag: "HP"},
	}
	incoming := []domain.PayrollRecord{
		{Employee: " DUPONT Jean ", GrossPay: "2100"},
		{Employee: "MARTIN Anne", Service: "Direction"},
		{Employee: "NOUVEAU Paul"},
	}

	got := fec.AppendPayrollRecords(existing, incoming)

	require.Len(t, got, 5)
	assert.Equal(t, existing, got[:2])
	assert.Equal(t, domain.Cell("Atelier"), got[2].Service)
	assert.Equal(t, domain.Cell("P"), got[2].ProductionFlag)
	assert.Equal(t, domain.Cell("2100"), got[2].GrossPay)
	assert.Equal(t, domain.Cell("Direction"), got[3].Service)
	assert.Equal(t, domain.Cell("HP"), got[3].ProductionFlag)
	assert.Equal(t, domain.Cell(fec.NotSpecified), got[4].Service)
	assert.Equal(t, domain.Cell(fec.NotSpecified), got[4].ProductionFlag)
}
