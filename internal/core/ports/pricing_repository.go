package ports

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/pricing"
)

// PricingRepository defines the persistence contract for pricing rules.
type PricingRepository interface {
	// Add persists a new pricing rule. One rule exists per delivery-speed
	// tier; a duplicate tier surfaces as a ConflictError.
	Add(ctx context.Context, aggregate *pricing.Rule) error

	// Update persists changed rates of an existing rule.
	Update(ctx context.Context, aggregate *pricing.Rule) error

	// GetBySpeed retrieves the rule of a delivery-speed tier. Returns nil
	// without an error when no rule is configured; the cost calculator
	// handles the zero-cost fallback.
	GetBySpeed(ctx context.Context, speed kernel.DeliverySpeed) (*pricing.Rule, error)
}
