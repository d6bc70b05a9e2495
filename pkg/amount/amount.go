// Package amount provides an exact base-10 value type for credits and
// contract rewards.
//
// Values are backed by shopspring/decimal and never pass through binary
// floats. They travel as JSON strings and persist as numeric(21,4).
package amount

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

// MaxFractionDigits matches the scale of the numeric(21,4) columns.
const MaxFractionDigits = 4

// pattern accepts the canonical input form: no sign, no leading zero unless the
// integer part is exactly zero, up to 17 integer digits (precision 21 minus scale 4)
// and 1-4 fractional digits.
var pattern = regexp.MustCompile(`^(0|[1-9]\d{0,16})(\.\d{1,4})?$`)

// Amount is an immutable exact decimal value.
type Amount struct {
	d decimal.Decimal
}

// IsValid reports whether s is an acceptable input representation.
func IsValid(s string) bool {
	return pattern.MatchString(s)
}

// Parse validates s against the input pattern and converts it.
func Parse(s string) (Amount, error) {
	if !IsValid(s) {
		return Amount{}, fmt.Errorf("invalid amount %q", s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Amount{d: d}, nil
}

// MustParse is Parse for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

func FromInt(v int64) Amount {
	return Amount{d: decimal.NewFromInt(v)}
}

func Zero() Amount {
	return Amount{d: decimal.Zero}
}

func (a Amount) Add(b Amount) Amount    { return Amount{d: a.d.Add(b.d)} }
func (a Amount) Sub(b Amount) Amount    { return Amount{d: a.d.Sub(b.d)} }
func (a Amount) MulInt(n int64) Amount  { return Amount{d: a.d.Mul(decimal.NewFromInt(n))} }
func (a Amount) Neg() Amount            { return Amount{d: a.d.Neg()} }
func (a Amount) Cmp(b Amount) int       { return a.d.Cmp(b.d) }
func (a Amount) Equal(b Amount) bool    { return a.d.Equal(b.d) }
func (a Amount) LessThan(b Amount) bool { return a.d.LessThan(b.d) }
func (a Amount) GreaterThanOrEqual(b Amount) bool {
	return a.d.GreaterThanOrEqual(b.d)
}
func (a Amount) IsNegative() bool { return a.d.IsNegative() }
func (a Amount) IsZero() bool     { return a.d.IsZero() }

// Decimal exposes the underlying value for aggregation code.
func (a Amount) Decimal() decimal.Decimal { return a.d }

// String renders the canonical form: no exponent, no trailing fractional zeros.
func (a Amount) String() string {
	return a.d.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts any decimal string, including negative ledger values.
// Input validation for writes goes through Parse.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("amount must be a JSON string: %w", err)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", s, err)
	}
	a.d = d
	return nil
}

func (a Amount) Value() (driver.Value, error) {
	return a.d.StringFixed(MaxFractionDigits), nil
}

func (a *Amount) Scan(src any) error {
	return a.d.Scan(src)
}
