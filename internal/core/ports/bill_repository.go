package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
)

// BillRepository defines the persistence contract for bill aggregates.
type BillRepository interface {
	// Add persists a new bill. One bill exists per parcel; a duplicate
	// parcel reference surfaces as a ConflictError.
	Add(ctx context.Context, aggregate *billing.Bill) error

	// Update persists changes to an existing bill.
	Update(ctx context.Context, aggregate *billing.Bill) error

	// Get retrieves a bill by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*billing.Bill, error)

	// GetByParcelID retrieves the bill attached to a parcel.
	GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*billing.Bill, error)
}
