package fec

import (
	"strings"

	"github.com/SscSPs/arp_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

type chargeEntry struct {
	label  string
	number string
	amount decimal.Decimal
}

// chargeSet keeps charge lines keyed by a string, in first-insertion order.
type chargeSet struct {
	index map[string]int
	lines []chargeEntry
}

func newChargeSet() *chargeSet {
	return &chargeSet{index: make(map[string]int)}
}

// add seeds the line on first sight of key and sums amount into it after.
func (s *chargeSet) add(key, label, number string, amount decimal.Decimal) {
	if i, ok := s.index[key]; ok {
		s.lines[i].amount = s.lines[i].amount.Add(amount)
		return
	}
	s.index[key] = len(s.lines)
	s.lines = append(s.lines, chargeEntry{label: label, number: number, amount: amount})
}

// put replaces the line under key, keeping its position when it exists.
func (s *chargeSet) put(key, label, number string, amount decimal.Decimal) {
	entry := chargeEntry{label: label, number: number, amount: amount}
	if i, ok := s.index[key]; ok {
		s.lines[i] = entry
		return
	}
	s.index[key] = len(s.lines)
	s.lines = append(s.lines, entry)
}

func (s *chargeSet) charges(period string) []domain.ChargeLine {
	out := make([]domain.ChargeLine, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, domain.ChargeLine{
			AccountLabel:  l.label,
			AccountNumber: l.number,
			Amount:        domain.NewAmount(l.amount),
			Period:        period,
		})
	}
	return out
}

func labelOf(e domain.LedgerEntry) string {
	return strings.ToUpper(e.AccountLabel.String())
}

func accountOf(e domain.LedgerEntry) string {
	return e.AccountNumber.String()
}

// aggregateByAccount sums Debit per "{label}_{number}" over the entries whose
// label is accepted by keep. Rows with an unreadable Debit are skipped.
func aggregateByAccount(entries []domain.LedgerEntry, keep func(label string) bool) *chargeSet {
	set := newChargeSet()
	for _, e := range entries {
		if !keep(labelOf(e)) {
			continue
		}
		debit, err := e.Debit.Decimal()
		if err != nil {
			continue
		}
		label, number := string(e.AccountLabel), string(e.AccountNumber)
		set.add(label+"_"+number, label, number, debit)
	}
	return set
}

// sumWhere adds up amount(e) over the entries accepted by keep. A row whose
// amount cannot be read is skipped.
func sumWhere(entries []domain.LedgerEntry, keep func(domain.LedgerEntry) bool, amount func(domain.LedgerEntry) (decimal.Decimal, error)) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		if !keep(e) {
			continue
		}
		v, err := amount(e)
		if err != nil {
			continue
		}
		total = total.Add(v)
	}
	return total
}

func debitOf(e domain.LedgerEntry) (decimal.Decimal, error) {
	return e.Debit.Decimal()
}

func creditOf(e domain.LedgerEntry) (decimal.Decimal, error) {
	return e.Credit.Decimal()
}

func balanceOf(e domain.LedgerEntry) (decimal.Decimal, error) {
	debit, err := e.Debit.Decimal()
	if err != nil {
		return decimal.Zero, err
	}
	credit, err := e.Credit.Decimal()
	if err != nil {
		return decimal.Zero, err
	}
	return debit.Sub(credit), nil
}

func accountHasPrefix(prefixes ...string) func(domain.LedgerEntry) bool {
	return func(e domain.LedgerEntry) bool {
		num := accountOf(e)
		for _, p := range prefixes {
			if strings.HasPrefix(num, p) {
				return true
			}
		}
		return false
	}
}

// UnreadableAmountRows returns the indexes of entries whose Debit or Credit
// is not a number. Those rows are ignored by every segment.
func UnreadableAmountRows(entries []domain.LedgerEntry) []int {
	var rows []int
	for i, e := range entries {
		if _, err := balanceOf(e); err != nil {
			rows = append(rows, i)
		}
	}
	return rows
}
