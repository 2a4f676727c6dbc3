package parcel

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrTrackingEventIsNotConstructed is returned when a TrackingEvent was not
// created via NewTrackingEvent or RestoreTrackingEvent.
var ErrTrackingEventIsNotConstructed = errors.New(
	"TrackingEvent must be created via NewTrackingEvent or RestoreTrackingEvent",
)

// TrackingEvent is one immutable entry in a parcel's tracking ledger. Exactly
// one event is recorded per status transition; the very first event is
// synthesized at parcel creation with status Created. Events are appended,
// never mutated, and removed only by cascading parcel deletion.
type TrackingEvent struct {
	id          kernel.UUID
	parcelID    kernel.UUID
	occurredAt  time.Time
	location    string
	status      Status
	description string

	// handledByID references the acting user, when known.
	handledByID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackingEvent records a status change at the current time.
// Location and description are required free text; handledByID is optional.
func NewTrackingEvent(
	parcelID kernel.UUID,
	status Status,
	location string,
	description string,
	handledByID *kernel.UUID,
) (*TrackingEvent, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if location == "" {
		return nil, errs.NewValueIsRequiredError("location")
	}
	if description == "" {
		return nil, errs.NewValueIsRequiredError("description")
	}
	if handledByID != nil {
		if err := handledByID.Validate(); err != nil {
			return nil, err
		}
	}

	return &TrackingEvent{
		id:          kernel.NewUUID(),
		parcelID:    parcelID,
		occurredAt:  time.Now(),
		location:    location,
		status:      status,
		description: description,
		handledByID: handledByID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// RestoreTrackingEvent reconstructs an event from persistence without
// re-stamping the time.
func RestoreTrackingEvent(
	id kernel.UUID,
	parcelID kernel.UUID,
	occurredAt time.Time,
	status Status,
	location string,
	description string,
	handledByID *kernel.UUID,
) (*TrackingEvent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	event, err := NewTrackingEvent(parcelID, status, location, description, handledByID)
	if err != nil {
		return nil, err
	}

	event.id = id
	event.occurredAt = occurredAt
	return event, nil
}

// Validate ensures the event was created through a constructor.
func (e *TrackingEvent) Validate() error {
	if e == nil {
		return ErrTrackingEventIsNotConstructed
	}
	return e.guard.Validate(ErrTrackingEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e *TrackingEvent) ID() kernel.UUID {
	return e.id
}

// ParcelID returns the identifier of the parcel the event belongs to.
func (e *TrackingEvent) ParcelID() kernel.UUID {
	return e.parcelID
}

// OccurredAt returns the time the event was recorded.
func (e *TrackingEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Location returns the free-text location of the scan.
func (e *TrackingEvent) Location() string {
	return e.location
}

// Status returns the status the parcel transitioned to.
func (e *TrackingEvent) Status() Status {
	return e.status
}

// Description returns the free-text description of the event.
func (e *TrackingEvent) Description() string {
	return e.description
}

// HandledByID returns the acting user's ID, or nil when the event was
// system-generated.
func (e *TrackingEvent) HandledByID() *kernel.UUID {
	return e.handledByID
}
