package pricingrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/pricing"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPricingRepository implements PricingRepository using GORM.
type GormPricingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPricingRepository creates a new GORM pricing repository.
func NewGormPricingRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRepository {
	return &GormPricingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new pricing rule to the database. A second rule for the same
// delivery-speed tier surfaces as a ConflictError.
func (r *GormPricingRepository) Add(ctx context.Context, aggregate *pricing.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("delivery speed")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changed rates of an existing rule.
func (r *GormPricingRepository) Update(ctx context.Context, aggregate *pricing.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RuleDTO{}).
		Where("id = ?", dto.ID).
		Select("BaseRate", "RatePerKg", "RatePerKm", "UpdatedAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetBySpeed retrieves the rule of a delivery-speed tier. Returns nil without
// an error when no rule is configured; the cost calculator falls back to zero
// cost in that case.
func (r *GormPricingRepository) GetBySpeed(
	ctx context.Context,
	speed kernel.DeliverySpeed,
) (*pricing.Rule, error) {
	if err := speed.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "delivery_speed = ?", int(speed)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
