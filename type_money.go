package aggie

import (
	"github.com/shopspring/decimal"
)

// Money represents a dollar amount from a report.
//
// Amounts are carried at full precision: report cells are parsed into
// decimals and never rounded inside this package. Rounding, currency
// symbols and separators are a rendering concern (see the renderer
// package).
type Money struct {
	value decimal.Decimal
}

// M builds a Money from a numeric constant.
func M[T float32 | float64 | int | int32 | int64](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unreachable")
	}
}

// ParseMoney parses the raw value of a spreadsheet cell into a Money.
// It accepts anything the decimal parser does, including exponent
// notation, which Excel uses for some stored values.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{value: d}, nil
}

// Simple wrappers around decimal.Decimal.

func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) Add(n Money) Money        { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money        { return Money{value: m.value.Sub(n.value)} }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal { return m.value }

// Cents returns the amount in whole cents, rounded half away from zero.
// This is the unit the renderer's currency formatter works in.
func (m Money) Cents() int64 {
	return m.value.Shift(2).Round(0).IntPart()
}

// String returns the plain decimal representation with two fraction
// digits and no symbol, e.g. "-1234.50".
func (m Money) String() string {
	return m.value.StringFixed(2)
}
