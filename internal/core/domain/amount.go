package domain

import "github.com/shopspring/decimal"

// Amount is a monetary subtotal. It is rounded to cents on construction and
// serialized as a JSON number, which is what the presentation layer reads.
type Amount struct {
	decimal.Decimal
}

// NewAmount rounds d to two decimal places.
func NewAmount(d decimal.Decimal) Amount {
	return Amount{Decimal: d.Round(2)}
}

// MarshalJSON writes the amount as a bare number with two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.StringFixed(2)), nil
}

// UnmarshalJSON reads both quoted and bare numbers.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	a.Decimal = d.Round(2)
	return nil
}

// MarshalYAML emits a plain float so yaml output stays numeric.
func (a Amount) MarshalYAML() (interface{}, error) {
	return a.Decimal.InexactFloat64(), nil
}
