package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user records.
type UserRepository interface {
	// Add persists a new user. A duplicate username surfaces as a
	// ConflictError.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user, including balance
	// changes on customer profiles.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByUsername retrieves a user by its unique login name.
	GetByUsername(ctx context.Context, username string) (*user.User, error)

	// GetAllDrivers retrieves the full driver pool ordered by username so
	// that round-robin assignment runs are reproducible.
	GetAllDrivers(ctx context.Context) ([]*user.User, error)
}
