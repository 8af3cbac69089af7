package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"tender/pkg/validation"
)

// Amount is a strictly positive currency amount.
//
// Invariant: the decimal value is greater than zero. Amounts are exact
// decimals, never floats; parse raw user input with NewAmountFromString
// rather than going through float64.
type Amount struct {
	value decimal.Decimal
}

// NewAmount constructs an Amount from a decimal value.
func NewAmount(field string, value decimal.Decimal) (Amount, error) {
	if !value.IsPositive() {
		return Amount{}, validation.Single(field, validation.RuleRange,
			fmt.Sprintf("must be greater than zero, got %s", value))
	}
	return Amount{value: value}, nil
}

// NewAmountFromString parses raw input as a decimal and validates it is
// positive. Unparseable input is a shape failure, not a range failure.
func NewAmountFromString(field, raw string) (Amount, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, validation.Single(field, validation.RuleShape,
			fmt.Sprintf("%q is not a decimal number", raw))
	}
	return NewAmount(field, value)
}

// MustAmount constructs an Amount from a decimal string, panicking on
// invalid input. Intended for fixtures and declarative wiring only.
func MustAmount(raw string) Amount {
	a, err := NewAmountFromString("amount", raw)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Equal reports whether two amounts represent the same value.
func (a Amount) Equal(other Amount) bool {
	return a.value.Equal(other.value)
}

// String renders the amount for logs and messages.
func (a Amount) String() string {
	return a.value.String()
}
