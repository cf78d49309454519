package ingest

import (
	"fmt"
	"strings"

	"github.com/SscSPs/arp_backend/internal/core/domain"
)

// LedgerEntries maps a FEC sheet to ledger entries. Column names are matched
// without regard to case; every ledger column is required.
func LedgerEntries(sheet Sheet) ([]domain.LedgerEntry, error) {
	idx := make(map[string]int, len(domain.LedgerColumns))
	var missing []string
	for _, name := range domain.LedgerColumns {
		i := sheet.Column(name)
		if i < 0 {
			missing = append(missing, name)
			continue
		}
		idx[name] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}

	entries := make([]domain.LedgerEntry, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		entries = append(entries, domain.LedgerEntry{
			EntryDate:     domain.Cell(wholeDaySerial(cell(row, idx[domain.ColumnEntryDate]))),
			AccountNumber: domain.Cell(strings.TrimSpace(cell(row, idx[domain.ColumnAccountNumber]))),
			AccountLabel:  domain.Cell(cell(row, idx[domain.ColumnAccountLabel])),
			Debit:         domain.Cell(cell(row, idx[domain.ColumnDebit])),
			Credit:        domain.Cell(cell(row, idx[domain.ColumnCredit])),
		})
	}
	return entries, nil
}

// wholeDaySerial drops the time-of-day fraction of a date serial such as
// "45777.5", so that it reads as a day.
func wholeDaySerial(v string) string {
	s := strings.TrimSpace(v)
	dot := strings.IndexByte(s, '.')
	if dot <= 0 {
		return v
	}
	for i := 0; i < len(s); i++ {
		if i != dot && (s[i] < '0' || s[i] > '9') {
			return v
		}
	}
	return s[:dot]
}
