package pricing

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrRuleIsNotConstructed is returned when a Rule was not created via NewRule
// or RestoreRule.
var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule")

// Rule holds the pricing parameters of one delivery-speed tier. Rule changes
// affect only future cost calculations, never already-billed parcels.
type Rule struct {
	id            kernel.UUID
	deliverySpeed kernel.DeliverySpeed
	baseRate      kernel.Money
	ratePerKg     kernel.Money

	// ratePerKm is carried for schema compatibility but not referenced by
	// the cost formula.
	ratePerKm kernel.Money

	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewRule creates a pricing rule for a delivery-speed tier. Rates must not be
// negative.
func NewRule(
	id kernel.UUID,
	deliverySpeed kernel.DeliverySpeed,
	baseRate kernel.Money,
	ratePerKg kernel.Money,
	ratePerKm kernel.Money,
) (*Rule, error) {
	r := &Rule{
		updatedAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDeliverySpeed(deliverySpeed),
		r.setRates(baseRate, ratePerKg, ratePerKm),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRule reconstructs a rule from persistence.
func RestoreRule(
	id kernel.UUID,
	deliverySpeed kernel.DeliverySpeed,
	baseRate kernel.Money,
	ratePerKg kernel.Money,
	ratePerKm kernel.Money,
	updatedAt time.Time,
) (*Rule, error) {
	r, err := NewRule(id, deliverySpeed, baseRate, ratePerKg, ratePerKm)
	if err != nil {
		return nil, err
	}

	r.updatedAt = updatedAt
	return r, nil
}

// Validate ensures the Rule was created through a constructor.
func (r *Rule) Validate() error {
	if r == nil {
		return ErrRuleIsNotConstructed
	}
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

// IsEqual compares two rules by their unique identifiers.
func (r *Rule) IsEqual(other *Rule) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rule's unique identifier.
func (r *Rule) ID() kernel.UUID {
	return r.id
}

// DeliverySpeed returns the tier this rule prices.
func (r *Rule) DeliverySpeed() kernel.DeliverySpeed {
	return r.deliverySpeed
}

// BaseRate returns the flat component of the cost formula.
func (r *Rule) BaseRate() kernel.Money {
	return r.baseRate
}

// RatePerKg returns the weight-proportional component of the cost formula.
func (r *Rule) RatePerKg() kernel.Money {
	return r.ratePerKg
}

// RatePerKm returns the distance rate carried on the rule.
func (r *Rule) RatePerKm() kernel.Money {
	return r.ratePerKm
}

// UpdatedAt returns the time of the last rate change.
func (r *Rule) UpdatedAt() time.Time {
	return r.updatedAt
}

// UpdateRates replaces the rule's rates for future calculations.
func (r *Rule) UpdateRates(baseRate, ratePerKg, ratePerKm kernel.Money) error {
	if err := r.setRates(baseRate, ratePerKg, ratePerKm); err != nil {
		return err
	}

	r.updatedAt = time.Now()
	return nil
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setDeliverySpeed(speed kernel.DeliverySpeed) error {
	if err := speed.Validate(); err != nil {
		return err
	}
	r.deliverySpeed = speed
	return nil
}

func (r *Rule) setRates(baseRate, ratePerKg, ratePerKm kernel.Money) error {
	if baseRate.IsNegative() {
		return errs.NewValueIsInvalidError("base rate")
	}
	if ratePerKg.IsNegative() {
		return errs.NewValueIsInvalidError("rate per kg")
	}
	if ratePerKm.IsNegative() {
		return errs.NewValueIsInvalidError("rate per km")
	}

	r.baseRate = baseRate
	r.ratePerKg = ratePerKg
	r.ratePerKm = ratePerKm
	return nil
}
