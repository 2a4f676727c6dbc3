// Package pricingrepo provides data transfer objects and mapping functions
// for pricing rule persistence.
package pricingrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// RuleDTO represents the database structure for persisting pricing rules.
// One rule exists per delivery-speed tier, enforced by the unique index.
type RuleDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliverySpeed int       `gorm:"uniqueIndex"`
	BaseRate      int64
	RatePerKg     int64
	RatePerKm     int64
	UpdatedAt     time.Time
}

// TableName specifies the database table name for pricing rule entities.
func (RuleDTO) TableName() string {
	return "pricing_rules"
}

// fromDomain converts a pricing rule domain aggregate to its database representation.
func fromDomain(aggregate *pricing.Rule) RuleDTO {
	return RuleDTO{
		ID:            aggregate.ID().Bytes(),
		DeliverySpeed: int(aggregate.DeliverySpeed()),
		BaseRate:      aggregate.BaseRate().Cents(),
		RatePerKg:     aggregate.RatePerKg().Cents(),
		RatePerKm:     aggregate.RatePerKm().Cents(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a pricing rule domain aggregate using RestoreRule.
func toDomain(dto RuleDTO) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pricing.RestoreRule(
		id,
		kernel.DeliverySpeed(dto.DeliverySpeed),
		kernel.MoneyFromCents(dto.BaseRate),
		kernel.MoneyFromCents(dto.RatePerKg),
		kernel.MoneyFromCents(dto.RatePerKm),
		dto.UpdatedAt,
	)
}
