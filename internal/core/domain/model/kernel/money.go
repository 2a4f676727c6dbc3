package kernel

import (
	"fmt"
	"math"

	"parceltrack/internal/pkg/errs"
)

// Money is a monetary amount held in integer cents to avoid accumulating
// floating point error across billing operations. All amounts in the system
// (shipping costs, bill amounts, customer balances) are Money.
//
// The zero value is a valid zero amount, so Money carries no constructor
// guard; negative amounts are representable because customer balances may be
// debited below the amount being checked elsewhere.
type Money struct {
	cents int64
}

// NewMoneyFromFloat converts a float amount to Money, rounding to 2 decimal
// places using standard (half away from zero) rounding. This is the single
// rounding point for cost calculation.
func NewMoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%v is not a finite number", amount),
		)
	}
	return Money{cents: int64(math.Round(amount * 100))}, nil
}

// MoneyFromCents restores a Money value from its persisted representation.
func MoneyFromCents(cents int64) Money {
	return Money{cents: cents}
}

// ZeroMoney returns the zero amount, used as the documented legacy fallback
// when no pricing rule exists for a delivery speed.
func ZeroMoney() Money {
	return Money{}
}

// Cents returns the amount in integer cents for persistence.
func (m Money) Cents() int64 {
	return m.cents
}

// Float64 returns the amount in currency units.
func (m Money) Float64() float64 {
	return float64(m.cents) / 100
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.Float64())
}
