package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdatePricingRuleCommandIsNotConstructed = errors.New(
	"UpdatePricingRuleCommand must be created via NewUpdatePricingRuleCommand constructor",
)

// UpdatePricingRuleCommand represents an admin request to change the rates
// of a delivery-speed tier. Rate changes apply only to future cost
// calculations.
type UpdatePricingRuleCommand struct { //nolint:recvcheck //using for validation
	actorID       kernel.UUID
	deliverySpeed kernel.DeliverySpeed
	baseRate      kernel.Money
	ratePerKg     kernel.Money
	ratePerKm     kernel.Money

	guard guard.ConstructorGuard
}

// NewUpdatePricingRuleCommand creates a command to change tier rates.
// Rates must not be negative.
func NewUpdatePricingRuleCommand(
	actorID kernel.UUID,
	deliverySpeed kernel.DeliverySpeed,
	baseRate, ratePerKg, ratePerKm kernel.Money,
) (UpdatePricingRuleCommand, error) {
	cmd := UpdatePricingRuleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setDeliverySpeed(deliverySpeed),
		cmd.setRates(baseRate, ratePerKg, ratePerKm),
	); err != nil {
		return UpdatePricingRuleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdatePricingRuleCommandIsNotConstructed if validation fails.
func (c UpdatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePricingRuleCommandIsNotConstructed)
}

// ActorID returns the acting user's identifier.
func (c UpdatePricingRuleCommand) ActorID() kernel.UUID {
	return c.actorID
}

// DeliverySpeed returns the tier whose rates change.
func (c UpdatePricingRuleCommand) DeliverySpeed() kernel.DeliverySpeed {
	return c.deliverySpeed
}

// BaseRate returns the new flat rate.
func (c UpdatePricingRuleCommand) BaseRate() kernel.Money {
	return c.baseRate
}

// RatePerKg returns the new per-kilogram rate.
func (c UpdatePricingRuleCommand) RatePerKg() kernel.Money {
	return c.ratePerKg
}

// RatePerKm returns the new per-kilometer rate.
func (c UpdatePricingRuleCommand) RatePerKm() kernel.Money {
	return c.ratePerKm
}

func (c *UpdatePricingRuleCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *UpdatePricingRuleCommand) setDeliverySpeed(speed kernel.DeliverySpeed) error {
	if err := speed.Validate(); err != nil {
		return err
	}
	c.deliverySpeed = speed
	return nil
}

func (c *UpdatePricingRuleCommand) setRates(baseRate, ratePerKg, ratePerKm kernel.Money) error {
	if baseRate.IsNegative() {
		return errs.NewValueIsInvalidError("base rate")
	}
	if ratePerKg.IsNegative() {
		return errs.NewValueIsInvalidError("rate per kg")
	}
	if ratePerKm.IsNegative() {
		return errs.NewValueIsInvalidError("rate per km")
	}

	c.baseRate = baseRate
	c.ratePerKg = ratePerKg
	c.ratePerKm = ratePerKm
	return nil
}
