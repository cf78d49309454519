package fec

import (
	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Segment titles and synthetic account numbers shown to users.
const (
	TitleProduction = "Production de l'exercice"
	TitlePurchases  = "Achats consommés"
	TitleTreasury   = "Trésorerie"

	AccountPayroll      = "coûts salariaux"
	AccountComputed     = "calculé"
	AccountDetected     = "détecté automatiquement"
	AccountAutoComputed = "calculé automatiquement"
	AccountManual       = "modifiable"

	LabelProductionStaff   = "PERSONNEL DE PRODUCTION"
	LabelProductionCharges = "CHARGES SOCIALES PATRONALES P"
	LabelAdminStaff        = "PERSONNEL ADM &HORS PRO."
	LabelAdminCharges      = "CHARGES SOCIALES PATRONALES HP"
	LabelPaidLeave         = "VAR.CP"
	LabelContributions     = "COTISATIONS"
	LabelOtherCharges      = "AUTRES PRODUITS ET CHARGES"
)

// paidLeaveRate is the paid-leave provision applied to production payroll.
var paidLeaveRate = decimal.New(1, -1)

// otherChargesExcludedPrefixes are class-6 accounts already reported elsewhere.
var otherChargesExcludedPrefixes = []string{
	"601", "602", "603", "604", "63", "64", "65", "66", "67", "68", "69",
}

// LedgerPeriod is the period of a batch, read from its first entry.
func LedgerPeriod(entries []domain.LedgerEntry) string {
	if len(entries) == 0 {
		return NormalizeLedgerPeriod("")
	}
	return NormalizeLedgerPeriod(string(entries[0].EntryDate))
}

// ProductionOfPeriod sums Credit over revenue accounts (class 7).
func ProductionOfPeriod(entries []domain.LedgerEntry) domain.PeriodTotal {
	total := sumWhere(entries, accountHasPrefix("7"), creditOf)
	return domain.PeriodTotal{
		Title:  TitleProduction,
		Period: LedgerPeriod(entries),
		Total:  domain.NewAmount(total),
	}
}

// ConsumedPurchases sums Debit over raw-material (601-603) and
// subcontracting (604) purchase accounts.
func ConsumedPurchases(entries []domain.LedgerEntry) domain.PurchasesTotal {
	materials := sumWhere(entries, accountHasPrefix("601", "602", "603"), debitOf)
	subcontracting := sumWhere(entries, accountHasPrefix("604"), debitOf)
	return domain.PurchasesTotal{
		Title:          TitlePurchases,
		Period:         LedgerPeriod(entries),
		Total:          domain.NewAmount(materials.Add(subcontracting)),
		RawMaterials:   domain.NewAmount(materials),
		Subcontracting: domain.NewAmount(subcontracting),
	}
}

// DirectCharges aggregates direct-charge accounts and appends the production
// payroll lines and the paid-leave provision. The provision line is always
// present, even at zero.
func DirectCharges(entries []domain.LedgerEntry, payroll domain.PayrollAggregate, book LabelBook) []domain.ChargeLine {
	set := aggregateByAccount(entries, func(label string) bool {
		return book.Has(label, Direct) && !book.Has(label, Manual)
	})

	gross := payroll.ProductionGross.Decimal
	charges := payroll.ProductionCharges.Decimal
	if gross.IsPositive() {
		set.put("PERSONNEL_PRODUCTION_CS", LabelProductionStaff, AccountPayroll, gross)
	}
	if charges.IsPositive() {
		set.put("CHARGES_PATRONALES_P_CS", LabelProductionCharges, AccountPayroll, charges)
	}
	set.put("VAR.CP_CALCULE", LabelPaidLeave, AccountComputed, gross.Add(charges).Mul(paidLeaveRate))

	return set.charges(LedgerPeriod(entries))
}

// IndirectCharges aggregates indirect-charge accounts, then appends the
// detected contributions, the computed "other charges", the admin payroll
// lines and one zero line per hand-entered label.
func IndirectCharges(entries []domain.LedgerEntry, payroll domain.PayrollAggregate, book LabelBook) []domain.ChargeLine {
	set := aggregateByAccount(entries, func(label string) bool {
		return book.Has(label, Indirect) && !book.Has(label, Manual)
	})

	contributions := sumWhere(entries, func(e domain.LedgerEntry) bool {
		return labelOf(e) == LabelContributions
	}, debitOf)
	set.put("COTISATIONS_AUTO", LabelContributions, AccountDetected, contributions)

	excluded := accountHasPrefix(otherChargesExcludedPrefixes...)
	other := sumWhere(entries, func(e domain.LedgerEntry) bool {
		return accountHasPrefix("6")(e) && !excluded(e) && !book.Has(labelOf(e), OtherExcluded)
	}, debitOf)
	set.put("AUTRES_PRODUITS_ET_CHARGES_AUTO", LabelOtherCharges, AccountAutoComputed, other)

	if payroll.AdminGross.IsPositive() {
		set.put("PERSONNEL_ADM_CS", LabelAdminStaff, AccountPayroll, payroll.AdminGross.Decimal)
	}
	if payroll.AdminCharges.IsPositive() {
		set.put("CHARGES_PATRONALES_HP_CS", LabelAdminCharges, AccountPayroll, payroll.AdminCharges.Decimal)
	}

	for _, label := range book.Placeholders() {
		set.put(label+"_MANUEL", label, AccountManual, decimal.Zero)
	}

	return set.charges(LedgerPeriod(entries))
}

// TaxesAndDuties aggregates tax accounts.
func TaxesAndDuties(entries []domain.LedgerEntry, book LabelBook) []domain.ChargeLine {
	set := aggregateByAccount(entries, func(label string) bool {
		return book.Has(label, Tax)
	})
	return set.charges(LedgerPeriod(entries))
}

// AdminPersonnel aggregates non-production personnel accounts.
func AdminPersonnel(entries []domain.LedgerEntry, book LabelBook) []domain.ChargeLine {
	set := aggregateByAccount(entries, func(label string) bool {
		return book.Has(label, Personnel)
	})
	return set.charges(LedgerPeriod(entries))
}

// Treasury sums Debit minus Credit over cash accounts (class 5).
func Treasury(entries []domain.LedgerEntry) domain.PeriodTotal {
	total := sumWhere(entries, accountHasPrefix("5"), balanceOf)
	return domain.PeriodTotal{
		Title:  TitleTreasury,
		Period: LedgerPeriod(entries),
		Total:  domain.NewAmount(total),
	}
}
