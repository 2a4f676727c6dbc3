package services

import (
	"log/slog"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/pricing"
)

// CostCalculator is a domain service computing the shipping cost of a parcel
// from its weight and the pricing rule of its delivery-speed tier.
//
// Formula: cost = base_rate + weight * rate_per_kg, rounded to two decimal
// places with standard rounding.
//
// A missing rule is a configuration error: the calculator logs it and falls
// back to a zero cost so that parcel creation is degraded rather than
// blocked. The fallback mirrors long-standing billing behavior and must not
// be turned into a hard failure without a data migration.
type CostCalculator struct {
	logger *slog.Logger
}

// NewCostCalculator creates a CostCalculator logging through the given
// logger.
func NewCostCalculator(logger *slog.Logger) CostCalculator {
	return CostCalculator{logger: logger}
}

// Calculate computes the shipping cost for a weight under the given rule.
// A nil rule yields zero cost and a warning log.
func (c CostCalculator) Calculate(weight float64, speed kernel.DeliverySpeed, rule *pricing.Rule) (kernel.Money, error) {
	if rule == nil {
		c.logger.Warn("no pricing rule configured, falling back to zero cost",
			slog.String("delivery_speed", speed.String()),
		)
		return kernel.ZeroMoney(), nil
	}

	if err := rule.Validate(); err != nil {
		return kernel.Money{}, err
	}

	raw := rule.BaseRate().Float64() + weight*rule.RatePerKg().Float64()
	return kernel.NewMoneyFromFloat(raw)
}
