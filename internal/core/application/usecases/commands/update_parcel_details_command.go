package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrUpdateParcelDetailsCommandIsNotConstructed = errors.New(
	"UpdateParcelDetailsCommand must be created via NewUpdateParcelDetailsCommand constructor",
)

// UpdateParcelDetailsCommand represents a partial update of a parcel's
// physical attributes. Nil fields are left unchanged, including each of the
// three handling markers individually. A weight or delivery-speed change
// triggers a reprice, and the bill follows the new cost only while it is
// unpaid.
type UpdateParcelDetailsCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	weight         *float64
	dimensions     *parcel.Dimensions
	deliverySpeed  *kernel.DeliverySpeed
	hazardous      *bool
	fragile        *bool
	international  *bool
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateParcelDetailsCommand creates a partial-update command. At least
// one field must be set; supplied fields are validated eagerly.
func NewUpdateParcelDetailsCommand(
	trackingNumber kernel.TrackingNumber,
	weight *float64,
	dimensions *parcel.Dimensions,
	deliverySpeed *kernel.DeliverySpeed,
	hazardous *bool,
	fragile *bool,
	international *bool,
	actorID kernel.UUID,
) (UpdateParcelDetailsCommand, error) {
	if weight == nil && dimensions == nil && deliverySpeed == nil &&
		hazardous == nil && fragile == nil && international == nil {
		return UpdateParcelDetailsCommand{}, errs.NewValueIsRequiredError("at least one field to update")
	}

	cmd := UpdateParcelDetailsCommand{
		hazardous:     hazardous,
		fragile:       fragile,
		international: international,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setWeight(weight),
		cmd.setDimensions(dimensions),
		cmd.setDeliverySpeed(deliverySpeed),
		cmd.setActorID(actorID),
	); err != nil {
		return UpdateParcelDetailsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateParcelDetailsCommandIsNotConstructed if validation fails.
func (c UpdateParcelDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateParcelDetailsCommandIsNotConstructed)
}

// TrackingNumber returns the public identifier of the parcel to update.
func (c UpdateParcelDetailsCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Weight returns the new weight, or nil to leave it unchanged.
func (c UpdateParcelDetailsCommand) Weight() *float64 {
	return c.weight
}

// Dimensions returns the new measurements, or nil to leave them unchanged.
func (c UpdateParcelDetailsCommand) Dimensions() *parcel.Dimensions {
	return c.dimensions
}

// DeliverySpeed returns the new tier, or nil to leave it unchanged.
func (c UpdateParcelDetailsCommand) DeliverySpeed() *kernel.DeliverySpeed {
	return c.deliverySpeed
}

// Hazardous returns the new hazardous marker, or nil to leave it unchanged.
func (c UpdateParcelDetailsCommand) Hazardous() *bool {
	return c.hazardous
}

// Fragile returns the new fragile marker, or nil to leave it unchanged.
func (c UpdateParcelDetailsCommand) Fragile() *bool {
	return c.fragile
}

// International returns the new international marker, or nil to leave it
// unchanged.
func (c UpdateParcelDetailsCommand) International() *bool {
	return c.international
}

// UpdatesFlags reports whether the update touches any handling marker.
func (c UpdateParcelDetailsCommand) UpdatesFlags() bool {
	return c.hazardous != nil || c.fragile != nil || c.international != nil
}

// ActorID returns the acting user's identifier.
func (c UpdateParcelDetailsCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Reprices reports whether the update changes a pricing input.
func (c UpdateParcelDetailsCommand) Reprices() bool {
	return c.weight != nil || c.deliverySpeed != nil
}

func (c *UpdateParcelDetailsCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *UpdateParcelDetailsCommand) setWeight(weight *float64) error {
	if weight != nil && *weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", *weight))
	}
	c.weight = weight
	return nil
}

func (c *UpdateParcelDetailsCommand) setDimensions(dimensions *parcel.Dimensions) error {
	if dimensions != nil {
		if err := dimensions.Validate(); err != nil {
			return err
		}
	}
	c.dimensions = dimensions
	return nil
}

func (c *UpdateParcelDetailsCommand) setDeliverySpeed(speed *kernel.DeliverySpeed) error {
	if speed != nil {
		if err := speed.Validate(); err != nil {
			return err
		}
	}
	c.deliverySpeed = speed
	return nil
}

func (c *UpdateParcelDetailsCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
