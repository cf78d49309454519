package fec_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/SscSPs/arp_backend/internal/core/fec"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(num, label, debit, credit string) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryDate:     "15/03/2024",
		AccountNumber: domain.Cell(num),
		AccountLabel:  domain.Cell(label),
		Debit:         domain.Cell(debit),
		Credit:        domain.Cell(credit),
	}
}

func sampleLedger() []domain.LedgerEntry {
	return []domain.LedgerEntry{
		entry("701000", "VENTES", "", "1000"),
		entry("706000", "PRESTATIONS", "", "250.50"),
		entry("601000", "ACHATS MP", "300", ""),
		entry("602100", "ACHATS FOURNITURES", "100.25", ""),
		entry("604000", "SOUS TRAITANCE", "50", ""),
		entry("606100", "ELECTRICITE", "80", ""),
		entry("606100", "Electricite ", "5", ""),
		entry("606100", "ELECTRICITE", "20", ""),
		entry("606300", "FOURN.ENT.&P.OUT", "15.5", ""),
		entry("615000", "ENTRETIEN MATERIEL ET OUTILLAGE", "40", ""),
		entry("616000", "ASSURANCES", "99", ""),
		entry("628100", "COTISATIONS", "12", ""),
		entry("625100", "Divers frais", "7", ""),
		entry("635110", "TAXE FONCIERE", "30", ""),
		entry("641100", "PERSONNEL ADMINISTRATIF", "500", ""),
		entry("512000", "BANQUE", "1000", "400"),
		entry("530000", "CAISSE", "50", ""),
		entry("606100", "ELECTRICITE", "abc", ""),
	}
}

func payrollFixture() domain.PayrollAggregate {
	return domain.PayrollAggregate{
		Period:            "Mars 2024",
		ProductionGross:   domain.NewAmount(decimal.NewFromInt(2000)),
		ProductionCharges: domain.NewAmount(decimal.RequireFromString("800.46")),
		AdminGross:        domain.NewAmount(decimal.NewFromInt(1500)),
		AdminCharges:      domain.NewAmount(decimal.NewFromInt(600)),
	}
}

// amounts indexes charge lines by "{label}_{number}".
func amounts(lines []domain.ChargeLine) map[string]string {
	out := make(map[string]string, len(lines))
	for _, l := range lines {
		out[l.AccountLabel+"_"+l.AccountNumber] = l.Amount.StringFixed(2)
	}
	return out
}

func TestProductionOfPeriod(t *testing.T) {
	got := fec.ProductionOfPeriod(sampleLedger())

	assert.Equal(t, "Production de l'exercice", got.Title)
	assert.Equal(t, "Mars 2024", got.Period)
	assert.Equal(t, "1250.50", got.Total.StringFixed(2))
}

func TestProductionOfPeriod_SingleEntry(t *testing.T) {
	got := fec.ProductionOfPeriod([]domain.LedgerEntry{entry("701000", "", "", "1000")})

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"titre":"Production de l'exercice","mois_annee":"Mars 2024","total":1000.0}`, string(raw))
}

func TestConsumedPurchases(t *testing.T) {
	got := fec.ConsumedPurchases(sampleLedger())

	assert.Equal(t, "Achats consommés", got.Title)
	assert.Equal(t, "400.25", got.RawMaterials.StringFixed(2))
	assert.Equal(t, "50.00", got.Subcontracting.StringFixed(2))
	assert.Equal(t, "450.25", got.Total.StringFixed(2))
}

func TestDirectCharges_WithoutPayroll(t *testing.T) {
	got := fec.DirectCharges(sampleLedger(), fec.ZeroPayroll("Mars 2024"), fec.DefaultLabelBook())

	require.Len(t, got, 4)
	assert.Equal(t, map[string]string{
		"ELECTRICITE_606100":      "100.00",
		"Electricite _606100":     "5.00",
		"FOURN.ENT.&P.OUT_606300": "15.50",
		"VAR.CP_calculé":          "0.00",
	}, amounts(got))
	assert.Equal(t, "ELECTRICITE", got[0].AccountLabel, "lines keep first-occurrence order")
	assert.Equal(t, "VAR.CP", got[len(got)-1].AccountLabel)
	for _, l := range got {
		assert.Equal(t, "Mars 2024", l.Period)
	}
}

func TestDirectCharges_WithPayroll(t *testing.T) {
	got := amounts(fec.DirectCharges(sampleLedger(), payrollFixture(), fec.DefaultLabelBook()))

	assert.Equal(t, "2000.00", got["PERSONNEL DE PRODUCTION_coûts salariaux"])
	assert.Equal(t, "800.46", got["CHARGES SOCIALES PATRONALES P_coûts salariaux"])
	// (2000 + 800.46) * 0.1 = 280.046
	assert.Equal(t, "280.05", got["VAR.CP_calculé"])
}

func TestDirectCharges_ManualLabelsIgnored(t *testing.T) {
	ledger := []domain.LedgerEntry{entry("648000", "VAR.CP", "123", "")}

	got := fec.DirectCharges(ledger, fec.ZeroPayroll("Mars 2024"), fec.DefaultLabelBook())

	require.Len(t, got, 1)
	assert.Equal(t, "calculé", got[0].AccountNumber)
	assert.True(t, got[0].Amount.IsZero())
}

func TestIndirectCharges(t *testing.T) {
	book := fec.DefaultLabelBook()
	got := fec.IndirectCharges(sampleLedger(), fec.ZeroPayroll("Mars 2024"), book)

	require.Len(t, got, 2+2+14)
	byKey := amounts(got)
	assert.Equal(t, "40.00", byKey["ENTRETIEN MATERIEL ET OUTILLAGE_615000"])
	assert.Equal(t, "12.00", byKey["COTISATIONS_628100"])
	assert.Equal(t, "12.00", byKey["COTISATIONS_détecté automatiquement"])
	assert.Equal(t, "7.00", byKey["AUTRES PRODUITS ET CHARGES_calculé automatiquement"])
	assert.NotContains(t, byKey, "ASSURANCES_616000")

	placeholders := got[len(got)-14:]
	for i, label := range book.Placeholders() {
		assert.Equal(t, label, placeholders[i].AccountLabel)
		assert.Equal(t, "modifiable", placeholders[i].AccountNumber)
		assert.True(t, placeholders[i].Amount.IsZero())
	}
}

func TestIndirectCharges_WithPayroll(t *testing.T) {
	got := amounts(fec.IndirectCharges(sampleLedger(), payrollFixture(), fec.DefaultLabelBook()))

	assert.Equal(t, "1500.00", got["PERSONNEL ADM &HORS PRO._coûts salariaux"])
	assert.Equal(t, "600.00", got["CHARGES SOCIALES PATRONALES HP_coûts salariaux"])
}

func TestIndirectCharges_AlwaysHasFixedLines(t *testing.T) {
	for _, ledger := range [][]domain.LedgerEntry{
		{entry("701000", "VENTES", "", "1")},
		sampleLedger(),
	} {
		got := fec.IndirectCharges(ledger, fec.ZeroPayroll("Mars 2024"), fec.DefaultLabelBook())

		manual, contributions, other := 0, 0, 0
		for _, l := range got {
			switch l.AccountNumber {
			case "modifiable":
				manual++
				assert.NotEqual(t, fec.LabelOtherCharges, l.AccountLabel)
			case "détecté automatiquement":
				contributions++
			case "calculé automatiquement":
				other++
			}
		}
		assert.Equal(t, 14, manual)
		assert.Equal(t, 1, contributions)
		assert.Equal(t, 1, other)
	}
}

func TestTaxesAndAdminPersonnel(t *testing.T) {
	book := fec.DefaultLabelBook()

	assert.Equal(t, map[string]string{"TAXE FONCIERE_635110": "30.00"},
		amounts(fec.TaxesAndDuties(sampleLedger(), book)))
	assert.Equal(t, map[string]string{"PERSONNEL ADMINISTRATIF_641100": "500.00"},
		amounts(fec.AdminPersonnel(sampleLedger(), book)))
}

func TestChargeSegments_EmptyListsAreNotNil(t *testing.T) {
	ledger := []domain.LedgerEntry{entry("701000", "VENTES", "", "1")}
	book := fec.DefaultLabelBook()

	assert.NotNil(t, fec.TaxesAndDuties(ledger, book))
	assert.Empty(t, fec.TaxesAndDuties(ledger, book))
	assert.NotNil(t, fec.AdminPersonnel(ledger, book))
}

func TestTreasury(t *testing.T) {
	got := fec.Treasury(sampleLedger())

	assert.Equal(t, "Trésorerie", got.Title)
	assert.Equal(t, "650.00", got.Total.StringFixed(2))
}

func TestSegments_RowOrderIndependent(t *testing.T) {
	book := fec.DefaultLabelBook()
	payroll := payrollFixture()
	ledger := sampleLedger()
	want, err := fec.Analyze(ledger, payroll, book)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := append([]domain.LedgerEntry(nil), ledger...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := fec.Analyze(shuffled, payroll, book)
		require.NoError(t, err)

		assert.Equal(t, want.Production.Total.String(), got.Production.Total.String())
		assert.Equal(t, want.Purchases.Total.String(), got.Purchases.Total.String())
		assert.Equal(t, want.Treasury.Total.String(), got.Treasury.Total.String())
		assert.Equal(t, amounts(want.DirectCharges), amounts(got.DirectCharges))
		assert.Equal(t, amounts(want.IndirectCharges), amounts(got.IndirectCharges))
		assert.Equal(t, amounts(want.Taxes), amounts(got.Taxes))
		assert.Equal(t, amounts(want.AdminPersonnel), amounts(got.AdminPersonnel))
	}
}

func TestUnreadableAmountRows(t *testing.T) {
	assert.Equal(t, []int{17}, fec.UnreadableAmountRows(sampleLedger()))
}

func TestSegments_OutOfRangeAmountIsSkipped(t *testing.T) {
	entries := []domain.LedgerEntry{
		entry("701000", "VENTES", "", "1000"),
		entry("706000", "PRESTATIONS", "", "1e50000000"),
		entry("606100", "ELECTRICITE", "1e-50000000", ""),
	}

	got, err := fec.Analyze(entries, fec.ZeroPayroll("Mars 2024"), fec.DefaultLabelBook())
	require.NoError(t, err)
	assert.Equal(t, "1000.00", got.Production.Total.StringFixed(2))
	assert.Equal(t, []int{1, 2}, fec.UnreadableAmountRows(entries))

	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.Less(t, len(raw), 10_000)
}
