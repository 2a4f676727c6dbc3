package auditrepo

import (
	"context"
	"time"

	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAuditLog implements the AuditLog port using GORM. Entries share the
// transaction of the business operation they describe, so an aborted
// operation leaves no trail.
type GormAuditLog struct {
	db *gorm.DB
}

// NewGormAuditLog creates a new GORM audit log.
func NewGormAuditLog(db *gorm.DB) *GormAuditLog {
	return &GormAuditLog{db: db}
}

// Append records one audit entry.
func (l *GormAuditLog) Append(ctx context.Context, actorID kernel.UUID, action, target, details string) error {
	dto := AuditEntryDTO{
		ID:        uuid.New(),
		ActorID:   actorID.Bytes(),
		Action:    action,
		Target:    target,
		Details:   details,
		CreatedAt: time.Now(),
	}

	return l.db.WithContext(ctx).Create(&dto).Error
}
