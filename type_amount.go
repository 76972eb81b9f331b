package ledger

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPlaces is the number of fractional digits kept and persisted for an Amount.
const amountPlaces = 2

// Amount is a signed decimal amount of money, positive for deposits and
// negative for payments. It carries no currency.
type Amount struct {
	value decimal.Decimal
}

// A returns an Amount from a number, rounded to two fractional digits.
func A[T float64 | int | int64 | decimal.Decimal](v T) Amount {
	return Amount{value: newDecimal(v).Round(amountPlaces)}
}

func newDecimal[T float64 | int | int64 | decimal.Decimal](v T) decimal.Decimal {
	switch x := any(v).(type) {
	case float64:
		return decimal.NewFromFloat(x)
	case int:
		return decimal.NewFromInt(int64(x))
	case int64:
		return decimal.NewFromInt(x)
	case decimal.Decimal:
		return x
	default:
		panic(fmt.Sprintf("unsupported amount type %T", v))
	}
}

// ParseAmount parses a decimal string such as "12", "-42.10" or "1e3".
// The result is rounded to two fractional digits.
func ParseAmount(str string) (Amount, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Amount{}, fmt.Errorf("amount is empty")
	}
	d, err := decimal.NewFromString(str)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", str, err)
	}
	return A(d), nil
}

// amountRE is the exact shape of a stored amount: an optional minus sign and two fractional digits.
var amountRE = regexp.MustCompile(`^-?\d+\.\d{2}$`)

// DecodeAmount parses an amount in the strict form used in the ledger file, like "-42.10".
func DecodeAmount(str string) (Amount, error) {
	if !amountRE.MatchString(str) {
		return Amount{}, fmt.Errorf("invalid amount %q want two decimals like %q", str, "-42.10")
	}
	return ParseAmount(str)
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// String formats the amount with exactly two fractional digits, no thousands
// separators and a "-" prefix when negative.
func (a Amount) String() string { return a.value.StringFixed(amountPlaces) }

func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }
func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) LessThanOrEqual(b Amount) bool    { return a.value.LessThanOrEqual(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) Add(b Amount) Amount              { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Neg() Amount                      { return Amount{value: a.value.Neg()} }

func (a Amount) MarshalJSON() ([]byte, error) {
	// a json number with the persisted precision.
	return []byte(a.String()), nil
}

func (a *Amount) UnmarshalJSON(bytes []byte) error {
	var n json.Number
	if err := json.Unmarshal(bytes, &n); err != nil {
		return err
	}
	v, err := ParseAmount(n.String())
	if err != nil {
		return err
	}
	*a = v
	return nil
}
