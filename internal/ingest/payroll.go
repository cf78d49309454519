package ingest

import (
	"strings"
	"unicode"

	"github.com/SscSPs/arp_backend/internal/core/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MatchKind tells how a payroll column was found in an upload.
type MatchKind string

const (
	MatchExact   MatchKind = "exact"
	MatchAlias   MatchKind = "alias"
	MatchFuzzy   MatchKind = "fuzzy"
	MatchMissing MatchKind = "missing"
)

// ColumnMatch records where a payroll column was read from.
type ColumnMatch struct {
	Column string
	Source string
	Index  int
	Kind   MatchKind
}

// payrollAliases lists the headers known to be used for a column by
// different payroll exports.
var payrollAliases = map[string][]string{
	domain.ColumnRTTTaken: {
		"RTT/Recup Pris", "RTT/Réci Pris", "RTT/Recup", "RTT/Réci", "RTT",
		"Recup Pris", "Réci Pris", "RTT/Récup Pris", "RTT/Récup",
	},
	domain.ColumnAverageHourlyCost:   {"Coût hora moyen", "Cout hora moyen", "Coût horaire moyen"},
	domain.ColumnEmployerChargesRate: {"% charge patronales", "% patronales", "Pourcentage patronales", "% charges patronales"},
	domain.ColumnPaidLeaveTaken:      {"CP Pris", "CP", "Congés Pris"},
	domain.ColumnTheoreticalHours:    {"Heures théoriques", "Théoriques", "Heures theoriques"},
	domain.ColumnNormalHours:         {"Heures normales", "Normales"},
	domain.ColumnOvertimeHours:       {"Heures majorées", "Majorées"},
	domain.ColumnTotalHours:          {"Total heures", "Total", "Heures total"},
	domain.ColumnActualHours:         {"Heures réelles", "Réelles"},
	domain.ColumnEmployeeCharges:     {"Charges salariales", "Salariales"},
	domain.ColumnEmployerCharges:     {"Charges patronales", "Patronales"},
	domain.ColumnSupplements:         {"Suppléments coût global", "Suppléments", "Coût global supplément"},
	domain.ColumnTotalCost:           {"Coût global", "Cout global", "Global"},
	domain.ColumnNetPay:              {"Net à payer", "Net a payer", "Net"},
	domain.ColumnFlatDays:            {"Forfait jour", "Forfait"},
	domain.ColumnProductionFlag:      {"P / HP", "P/HP", "P HP", "P-HP"},
}

// foldHeader lowercases, strips accents and removes slashes and spaces.
func foldHeader(s string) string {
	// Chains hold state, so each call builds its own.
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(strip, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)
	return strings.NewReplacer("/", "", " ", "").Replace(folded)
}

func exactColumn(columns []string, name string) int {
	for i, c := range columns {
		if strings.TrimSpace(c) == name {
			return i
		}
	}
	return -1
}

// MatchPayrollColumns finds every payroll column among the upload headers:
// by exact name first, then by a known alias, then by accent-insensitive
// containment in either direction.
func MatchPayrollColumns(columns []string) []ColumnMatch {
	matches := make([]ColumnMatch, 0, len(domain.PayrollColumns))
	for _, name := range domain.PayrollColumns {
		matches = append(matches, matchPayrollColumn(columns, name))
	}
	return matches
}

func matchPayrollColumn(columns []string, name string) ColumnMatch {
	if i := exactColumn(columns, name); i >= 0 {
		return ColumnMatch{Column: name, Source: columns[i], Index: i, Kind: MatchExact}
	}
	for _, alias := range payrollAliases[name] {
		if i := exactColumn(columns, alias); i >= 0 {
			return ColumnMatch{Column: name, Source: columns[i], Index: i, Kind: MatchAlias}
		}
	}
	want := foldHeader(name)
	for i, c := range columns {
		got := foldHeader(c)
		if got == "" {
			continue
		}
		if strings.Contains(got, want) || strings.Contains(want, got) {
			return ColumnMatch{Column: name, Source: c, Index: i, Kind: MatchFuzzy}
		}
	}
	return ColumnMatch{Column: name, Index: -1, Kind: MatchMissing}
}

// PayrollRecords maps a payroll sheet to records. Columns that cannot be
// matched are left empty.
func PayrollRecords(sheet Sheet) ([]domain.PayrollRecord, []ColumnMatch) {
	matches := MatchPayrollColumns(sheet.Columns)
	records := make([]domain.PayrollRecord, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		var rec domain.PayrollRecord
		for _, m := range matches {
			if m.Index < 0 {
				continue
			}
			v := strings.TrimSpace(cell(row, m.Index))
			if m.Column == domain.ColumnMonth {
				v = wholeDaySerial(v)
			}
			*rec.Field(m.Column) = domain.Cell(v)
		}
		records = append(records, rec)
	}
	return records, matches
}
