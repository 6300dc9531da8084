package models

import (
	"fmt"

	"auctions/internal/biddingerrors"

	"github.com/shopspring/decimal"
)

// Currency identifies the unit of a Money amount
type Currency string

// Dollars is the only currency auctions are priced in
const Dollars Currency = "USD"

// Money is an exact, non-negative decimal amount. The zero value is 0 USD.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// NewDollars parses a decimal string such as "10.50" into a dollar amount.
// Negative amounts and fractions of a cent fail with ErrInvalidAmount.
func NewDollars(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse %q: %w", amount, biddingerrors.ErrInvalidAmount)
	}
	return dollarsFromDecimal(d)
}

// MustDollars is NewDollars for literals known to be valid. It panics otherwise.
func MustDollars(amount string) Money {
	m, err := NewDollars(amount)
	if err != nil {
		panic(err)
	}
	return m
}

// DollarsFromDecimal wraps an already parsed decimal, e.g. one scanned from a database column.
func DollarsFromDecimal(d decimal.Decimal) (Money, error) {
	return dollarsFromDecimal(d)
}

func dollarsFromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, fmt.Errorf("negative amount %s: %w", d.String(), biddingerrors.ErrInvalidAmount)
	}
	// amounts are whole cents; "10.500" is fine, "10.505" is not
	if !d.Equal(d.Round(2)) {
		return Money{}, fmt.Errorf("sub-cent amount %s: %w", d.String(), biddingerrors.ErrInvalidAmount)
	}
	return Money{amount: d, currency: Dollars}, nil
}

// Currency returns the unit of m
func (m Money) Currency() Currency {
	if m.currency == "" {
		return Dollars
	}
	return m.currency
}

// Decimal returns the raw amount
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add sums two amounts of the same currency
func (m Money) Add(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, fmt.Errorf("add %s to %s: %w", other.Currency(), m.Currency(), biddingerrors.ErrCurrencyMismatch)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.Currency()}, nil
}

// Sub fails when other is larger than m, since Money cannot go negative.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, fmt.Errorf("subtract %s from %s: %w", other.Currency(), m.Currency(), biddingerrors.ErrCurrencyMismatch)
	}
	return dollarsFromDecimal(m.amount.Sub(other.amount))
}

// Cmp returns -1, 0 or +1 comparing amounts only; 10.5 and 10.50 are equal.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

// LessThan reports whether m is strictly smaller than other
func (m Money) LessThan(other Money) bool { return m.Cmp(other) < 0 }

// GreaterThan reports whether m is strictly larger than other
func (m Money) GreaterThan(other Money) bool { return m.Cmp(other) > 0 }

// Equal compares amounts, ignoring trailing zeros
func (m Money) Equal(other Money) bool { return m.Cmp(other) == 0 }

// String renders the canonical two-decimal form, e.g. "10.50"
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON encodes m as its canonical string, e.g. "10.50"
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}
