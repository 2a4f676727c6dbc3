package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
)

// AuditLog is the fire-and-forget audit sink. Entries are appended and never
// read back by the core; failures must not abort the business operation.
type AuditLog interface {
	// Append records one audit entry. Target and details may be empty.
	Append(ctx context.Context, actorID kernel.UUID, action, target, details string) error
}
