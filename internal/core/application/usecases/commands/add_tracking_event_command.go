package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrAddTrackingEventCommandIsNotConstructed = errors.New(
	"AddTrackingEventCommand must be created via NewAddTrackingEventCommand constructor",
)

// AddTrackingEventCommand represents a request to move a parcel to a new
// status and append the corresponding tracking event. The actor's role
// decides whether the transition is permitted.
//
// Example:
//
//	cmd, err := NewAddTrackingEventCommand(trackingNumber, parcel.InTransit, "Hub 3", "Departed hub", actorID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition rejected: %w", err)
//	}
type AddTrackingEventCommand struct { //nolint:recvcheck //using for validation
	trackingNumber kernel.TrackingNumber
	target         parcel.Status
	location       string
	description    string
	actorID        kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddTrackingEventCommand creates a command to record a status change.
// Validates the tracking number, the target status, the acting user's id and
// that location and description are present.
func NewAddTrackingEventCommand(
	trackingNumber kernel.TrackingNumber,
	target parcel.Status,
	location string,
	description string,
	actorID kernel.UUID,
) (AddTrackingEventCommand, error) {
	cmd := AddTrackingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackingNumber(trackingNumber),
		cmd.setTarget(target),
		cmd.setLocation(location),
		cmd.setDescription(description),
		cmd.setActorID(actorID),
	); err != nil {
		return AddTrackingEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddTrackingEventCommandIsNotConstructed if validation fails.
func (c AddTrackingEventCommand) Validate() error {
	return c.guard.Validate(ErrAddTrackingEventCommandIsNotConstructed)
}

// TrackingNumber returns the public identifier of the parcel to move.
func (c AddTrackingEventCommand) TrackingNumber() kernel.TrackingNumber {
	return c.trackingNumber
}

// Target returns the requested status.
func (c AddTrackingEventCommand) Target() parcel.Status {
	return c.target
}

// Location returns the free-text scan location.
func (c AddTrackingEventCommand) Location() string {
	return c.location
}

// Description returns the free-text event description.
func (c AddTrackingEventCommand) Description() string {
	return c.description
}

// ActorID returns the acting user's identifier.
func (c AddTrackingEventCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AddTrackingEventCommand) setTrackingNumber(trackingNumber kernel.TrackingNumber) error {
	if err := trackingNumber.Validate(); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *AddTrackingEventCommand) setTarget(target parcel.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

func (c *AddTrackingEventCommand) setLocation(location string) error {
	if location == "" {
		return errs.NewValueIsRequiredError("location")
	}
	c.location = location
	return nil
}

func (c *AddTrackingEventCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	c.description = description
	return nil
}

func (c *AddTrackingEventCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}
