// Package queries contains read-only operations against the store.
// Implements the Query side of the CQRS architecture with direct SQL for
// optimal read performance, bypassing the aggregate reconstruction path.
package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelByTrackingQueryIsNotConstructed = errors.New(
	"GetParcelByTrackingQuery must be created via NewGetParcelByTrackingQuery constructor",
)

// GetParcelByTrackingQuery retrieves one parcel with its full tracking
// history by its public tracking number.
//
// Example:
//
//	query, err := NewGetParcelByTrackingQuery(trackingNumber)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, query)
type GetParcelByTrackingQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetParcelByTrackingQuery creates a query for one parcel's details.
func NewGetParcelByTrackingQuery(trackingNumber kernel.TrackingNumber) (GetParcelByTrackingQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetParcelByTrackingQuery{}, err
	}

	return GetParcelByTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelByTrackingQueryIsNotConstructed if validation fails.
func (q GetParcelByTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelByTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the public identifier to look up.
func (q GetParcelByTrackingQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// GetParcelByTrackingQueryResponse is the read model of one parcel with its
// tracking history in append order.
type GetParcelByTrackingQueryResponse struct {
	ID                kernel.UUID
	TrackingNumber    string
	SenderID          kernel.UUID
	RecipientName     string
	RecipientAddress  string
	Status            parcel.Status
	DeliverySpeed     kernel.DeliverySpeed
	Weight            float64
	ShippingCost      kernel.Money
	AssignedDriverID  *kernel.UUID
	CreatedAt         time.Time
	EstimatedDelivery *time.Time
	Events            []TrackingEventResponse
}

// TrackingEventResponse is the read model of one tracking ledger entry.
type TrackingEventResponse struct {
	OccurredAt  time.Time
	Location    string
	Status      parcel.Status
	Description string
}
