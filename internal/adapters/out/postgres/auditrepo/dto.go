// Package auditrepo persists the append-only audit trail of state-changing
// operations. Entries are written alongside the business transaction and are
// never read back by the core.
package auditrepo

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntryDTO represents one row of the audit trail.
type AuditEntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActorID   uuid.UUID `gorm:"type:uuid;index"`
	Action    string    `gorm:"index"`
	Target    string
	Details   string
	CreatedAt time.Time
}

// TableName specifies the database table name for audit entries.
func (AuditEntryDTO) TableName() string {
	return "audit_entries"
}
