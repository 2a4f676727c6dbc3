package queries

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetParcelsForDriverQueryIsNotConstructed = errors.New(
	"GetParcelsForDriverQuery must be created via NewGetParcelsForDriverQuery constructor",
)

// GetParcelsForDriverQuery retrieves the open delivery manifest of one
// driver. Delivered parcels drop off the manifest.
type GetParcelsForDriverQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetParcelsForDriverQuery creates a query for one driver's manifest.
func NewGetParcelsForDriverQuery(driverID kernel.UUID) (GetParcelsForDriverQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetParcelsForDriverQuery{}, err
	}

	return GetParcelsForDriverQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetParcelsForDriverQueryIsNotConstructed if validation fails.
func (q GetParcelsForDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetParcelsForDriverQueryIsNotConstructed)
}

// DriverID returns the driver whose manifest is requested.
func (q GetParcelsForDriverQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetParcelsForDriverQueryResponse is the read model of one manifest stop.
type GetParcelsForDriverQueryResponse struct {
	ID               kernel.UUID
	TrackingNumber   string
	RecipientName    string
	RecipientAddress string
	RecipientPhone   string
	Status           parcel.Status
	Flags            parcel.HandlingFlags
}
