// Package ingest turns uploaded spreadsheets into ledger and payroll records.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrUnsupportedFormat is returned for file types that cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrUnreadable is returned when a file of a known type cannot be parsed.
	ErrUnreadable = errors.New("unreadable spreadsheet")
	// ErrEmptySheet is returned when a file holds no header row.
	ErrEmptySheet = errors.New("spreadsheet is empty")
	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("missing required column")
)

// Sheet is a header row plus the non-blank data rows under it.
type Sheet struct {
	Columns []string
	Rows    [][]string
}

// Column returns the index of the first column named name, ignoring case and
// surrounding spaces, or -1.
func (s Sheet) Column(name string) int {
	for i, c := range s.Columns {
		if strings.EqualFold(strings.TrimSpace(c), strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// cell returns row[i] or "" when the row is shorter than the header.
func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// SupportedExtension reports whether filename has an extension ReadRows reads.
func SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".csv", ".txt":
		return true
	}
	return false
}

// ReadRows returns the raw cell grid of an upload. Workbooks are read from
// their first sheet with raw cell values, so dates arrive as day serials.
// Delimited text is read as UTF-8, falling back to ISO-8859-15.
func ReadRows(filename string, r io.Reader) ([][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm":
		return readWorkbook(r)
	case ".csv", ".txt":
		return readDelimited(r)
	case ".xls":
		return nil, fmt.Errorf("%w: legacy .xls workbooks must be saved as .xlsx", ErrUnsupportedFormat)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// ReadSheet reads an upload and detects its header.
func ReadSheet(filename string, r io.Reader) (Sheet, error) {
	rows, err := ReadRows(filename, r)
	if err != nil {
		return Sheet{}, err
	}
	return DetectHeader(rows)
}

func readWorkbook(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptySheet
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return rows, nil
}

var delimiters = []rune{'\t', '|', ';', ','}

// sniffDelimiter picks the candidate that occurs most on the first line.
func sniffDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	best, bestCount := ',', 0
	for _, d := range delimiters {
		if n := bytes.Count(line, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}

func readDelimited(r io.Reader) ([][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if !utf8.Valid(data) {
		if data, err = charmap.ISO8859_15.NewDecoder().Bytes(data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
		}
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = sniffDelimiter(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	return rows, nil
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func isNumeric(v string) bool {
	v = strings.TrimSpace(v)
	if v == "" {
		return false
	}
	if !strings.Contains(v, ".") && strings.Count(v, ",") == 1 {
		v = strings.Replace(v, ",", ".", 1)
	}
	_, err := decimal.NewFromString(v)
	return err == nil
}

// isSubHeader reports whether row looks like a second header line: it has
// text and no number.
func isSubHeader(row []string) bool {
	if isBlank(row) {
		return false
	}
	for _, v := range row {
		if isNumeric(v) {
			return false
		}
	}
	return true
}

// DetectHeader finds the header of a raw grid. Leading blank rows are
// skipped. When the line under the header holds labels only, the two lines
// are merged column by column as "{top} {bottom}". Blank data rows are dropped.
func DetectHeader(rows [][]string) (Sheet, error) {
	start := 0
	for start < len(rows) && isBlank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return Sheet{}, ErrEmptySheet
	}

	top := rows[start]
	columns := make([]string, len(top))
	for i, v := range top {
		columns[i] = strings.TrimSpace(v)
	}
	next := start + 1

	if next < len(rows)-1 && isSubHeader(rows[next]) {
		bottom := rows[next]
		if len(bottom) > len(columns) {
			columns = append(columns, make([]string, len(bottom)-len(columns))...)
		}
		for i := range columns {
			b := strings.TrimSpace(cell(bottom, i))
			switch {
			case b == "":
			case columns[i] == "":
				columns[i] = b
			default:
				columns[i] = columns[i] + " " + b
			}
		}
		next++
	}

	sheet := Sheet{Columns: columns}
	for _, row := range rows[next:] {
		if !isBlank(row) {
			sheet.Rows = append(sheet.Rows, row)
		}
	}
	return sheet, nil
}
