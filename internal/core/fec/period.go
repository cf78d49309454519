package fec

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// LedgerPeriodFallback is the label used when a ledger date cannot be read.
	LedgerPeriodFallback = "Période"
	// PayrollPeriodUnknown is the label for a payroll row with no month.
	PayrollPeriodUnknown = "Période inconnue"

	defaultYear = 2024
	// Largest serial whose date is still within year 9999.
	maxExcelSerial = 2958465
)

var frenchMonths = [...]string{
	"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
	"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
}

// ledgerLayouts are tried in order after the serial check.
var ledgerLayouts = []string{
	"2/1/2006",
	"2006-1-2",
	"2-1-2006",
	"2/1/06",
	"2006-1-2 15:04:05",
}

// FrenchMonth returns the French name of m.
func FrenchMonth(m time.Month) string {
	return frenchMonths[m-1]
}

// PeriodLabel formats a month and year as "{MoisFr} {Année}".
func PeriodLabel(year int, m time.Month) string {
	return fmt.Sprintf("%s %d", FrenchMonth(m), year)
}

func hasFrenchMonth(s string) bool {
	for _, name := range frenchMonths {
		if strings.Contains(s, name) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// ExcelSerialToDate converts a spreadsheet day serial to a calendar date. The
// 1900 leap-year quirk is honoured: serials from 60 on are shifted back one
// day. It reports false when the date would fall past year 9999.
func ExcelSerialToDate(serial int) (time.Time, bool) {
	if serial > maxExcelSerial {
		return time.Time{}, false
	}
	if serial >= 60 {
		serial--
	}
	base := time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, serial-1), true
}

func serialPeriod(s string) (string, bool) {
	serial, err := strconv.Atoi(s)
	if err != nil {
		return "", false
	}
	d, ok := ExcelSerialToDate(serial)
	if !ok {
		return "", false
	}
	return PeriodLabel(d.Year(), d.Month()), true
}

// slashPeriod reads the second token of "d/m[/y]" as the month and the third
// as the year.
func slashPeriod(s string) (string, bool) {
	parts := strings.Split(s, "/")
	if len(parts) < 2 {
		return "", false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || month < 1 || month > 12 {
		return "", false
	}
	year := defaultYear
	if len(parts) > 2 {
		year, err = strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil || year < 1 || year > 9999 {
			return "", false
		}
	}
	return PeriodLabel(year, time.Month(month)), true
}

// NormalizeLedgerPeriod turns a FEC entry date into "{MoisFr} {Année}".
// Unreadable input yields LedgerPeriodFallback.
func NormalizeLedgerPeriod(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return LedgerPeriodFallback
	}
	if hasFrenchMonth(s) {
		return s
	}
	if isDigits(s) {
		if p, ok := serialPeriod(s); ok {
			return p
		}
		return LedgerPeriodFallback
	}
	for _, layout := range ledgerLayouts {
		if t, err := time.Parse(layout, s); err == nil && t.Year() >= 1 {
			return PeriodLabel(t.Year(), t.Month())
		}
	}
	if strings.Contains(s, "/") {
		if p, ok := slashPeriod(s); ok {
			return p
		}
	}
	return LedgerPeriodFallback
}

// NormalizePayrollPeriod turns the "Mois" cell of a payroll row into
// "{MoisFr} {Année}". Unreadable input is echoed as "Période {raw}".
func NormalizePayrollPeriod(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return PayrollPeriodUnknown
	}
	if hasFrenchMonth(s) {
		return s
	}
	if isDigits(s) {
		if p, ok := serialPeriod(s); ok {
			return p
		}
	}
	unreadable := LedgerPeriodFallback + " " + s

	switch {
	case strings.Contains(s, "-") && len(s) >= 7:
		if t, err := time.Parse("2006-1-2", prefix(s, 10)); err == nil && t.Year() >= 1 {
			return PeriodLabel(t.Year(), t.Month())
		}
		if t, err := time.Parse("2006-1", prefix(s, 7)); err == nil && t.Year() >= 1 {
			return PeriodLabel(t.Year(), t.Month())
		}
		return unreadable
	case strings.Contains(s, "/"):
		if t, err := time.Parse("2/1/2006", prefix(s, 10)); err == nil && t.Year() >= 1 {
			return PeriodLabel(t.Year(), t.Month())
		}
		if p, ok := slashPeriod(s); ok {
			return p
		}
		return unreadable
	default:
		return unreadable
	}
}

// prefix returns at most n bytes of s without splitting a UTF-8 sequence.
func prefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
