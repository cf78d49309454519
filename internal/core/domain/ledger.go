package domain

// LedgerEntry is one line of a FEC general-ledger export. JSON names are the
// FEC column names and must not change.
type LedgerEntry struct {
	EntryDate     Cell `json:"EcritureDate"`
	AccountNumber Cell `json:"CompteNum"`
	AccountLabel  Cell `json:"CompteLib"`
	Debit         Cell `json:"Debit"`
	Credit        Cell `json:"Credit"`
}

// Ledger column names as they appear in FEC exports.
const (
	ColumnEntryDate     = "EcritureDate"
	ColumnAccountNumber = "CompteNum"
	ColumnAccountLabel  = "CompteLib"
	ColumnDebit         = "Debit"
	ColumnCredit        = "Credit"
)

// LedgerColumns lists the columns a FEC upload must provide.
var LedgerColumns = []string{
	ColumnEntryDate,
	ColumnAccountNumber,
	ColumnAccountLabel,
	ColumnDebit,
	ColumnCredit,
}
