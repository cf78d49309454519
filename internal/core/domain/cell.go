package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// maxAmountExponent bounds the decimal exponent of a parsed cell. Wider
// exponents make rounding and formatting allocate without limit.
const maxAmountExponent = 30

// maxAmount is the first magnitude treated as unreadable.
var maxAmount = decimal.New(1, 18)

// Cell is a raw spreadsheet value kept as text. Uploads come from hand-edited
// spreadsheets, so every accessor has a defined result for missing values.
type Cell string

// String returns the trimmed value.
func (c Cell) String() string {
	return strings.TrimSpace(string(c))
}

// IsEmpty reports whether the cell holds nothing but whitespace.
func (c Cell) IsEmpty() bool {
	return c.String() == ""
}

// Decimal parses the cell as a number. An empty cell is zero. A single comma
// is accepted as the decimal separator when the value has no dot. Values at or
// above 1e18, or written with an exponent beyond ±30, are rejected.
func (c Cell) Decimal() (decimal.Decimal, error) {
	s := c.String()
	if s == "" {
		return decimal.Zero, nil
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cell %q is not numeric: %w", string(c), err)
	}
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero, fmt.Errorf("cell %q is out of range", string(c))
	}
	if d.Abs().Cmp(maxAmount) >= 0 {
		return decimal.Zero, fmt.Errorf("cell %q is out of range", string(c))
	}
	return d, nil
}

// MarshalJSON writes the raw text, or null for an empty cell.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.IsEmpty() {
		return []byte("null"), nil
	}
	return json.Marshal(string(c))
}

// UnmarshalJSON accepts strings, numbers, booleans and null so that blobs
// written by older importers (which stored native JSON numbers) still load.
func (c *Cell) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch x := v.(type) {
	case nil:
		*c = ""
	case string:
		*c = Cell(x)
	case json.Number:
		*c = Cell(x.String())
	case bool:
		*c = Cell(strconv.FormatBool(x))
	default:
		return fmt.Errorf("unsupported cell value %s", b)
	}
	return nil
}
