// Package fec segments a French general-ledger export (FEC) into the cost
// blocks of a monthly management report, blending in payroll costs.
package fec

import (
	"errors"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

// ErrEmptyLedger is returned when an upload holds no ledger entries.
var ErrEmptyLedger = errors.New("ledger batch is empty")

// Analyze computes every segment of one ledger batch. payroll should be the
// aggregate for the batch period; its Period is overwritten with it.
func Analyze(entries []domain.LedgerEntry, payroll domain.PayrollAggregate, book LabelBook) (*domain.AnalysisResult, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyLedger
	}
	payroll.Period = LedgerPeriod(entries)
	return &domain.AnalysisResult{
		Production:      ProductionOfPeriod(entries),
		Purchases:       ConsumedPurchases(entries),
		DirectCharges:   DirectCharges(entries, payroll, book),
		IndirectCharges: IndirectCharges(entries, payroll, book),
		Taxes:           TaxesAndDuties(entries, book),
		AdminPersonnel:  AdminPersonnel(entries, book),
		Payroll:         payroll,
		Treasury:        Treasury(entries),
	}, nil
}
