// Package ports defines repository interfaces for the tracking domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
// Provides methods for storing, retrieving, and querying parcel entities
// with their complete tracking event history.
type ParcelRepository interface {
	// Add persists a new parcel aggregate with its tracking events.
	// The parcel must be valid and not already exist in the repository.
	// A duplicate tracking number surfaces as a ConflictError.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate, including
	// newly appended tracking events.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	// Returns the complete parcel with its tracking event history.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByTrackingNumber retrieves a parcel by its public tracking number.
	// Returns an ObjectNotFoundError when the number is unknown.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*parcel.Parcel, error)

	// GetAllUnassignedInSorting retrieves all parcels in Sorting status with
	// no assigned driver, ordered by creation time then id so that repeated
	// assignment runs process them deterministically.
	GetAllUnassignedInSorting(ctx context.Context) ([]*parcel.Parcel, error)
}
