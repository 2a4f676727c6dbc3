package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/pricing"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
)

// UpdatePricingRuleCommandHandler handles admin changes to the pricing
// table. A rule is created for the tier if none exists yet; otherwise its
// rates are replaced.
type UpdatePricingRuleCommandHandler struct {
	uowFactory PricingUoWFactory
}

// NewUpdatePricingRuleCommandHandler creates a handler for pricing changes.
func NewUpdatePricingRuleCommandHandler(uowFactory PricingUoWFactory) UpdatePricingRuleCommandHandler {
	return UpdatePricingRuleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pricing change. Only admins may change rates; other
// roles receive a NotAuthorizedError.
func (h UpdatePricingRuleCommandHandler) Handle(ctx context.Context, cmd UpdatePricingRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	actor, err := uow.UserRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}
	if actor.Role() != user.Admin {
		return errs.NewNotAuthorizedError(actor.Role().String(), "update_pricing_rule")
	}

	pricingRepo := uow.PricingRepository()
	rule, err := pricingRepo.GetBySpeed(ctx, cmd.DeliverySpeed())
	if err != nil {
		return err
	}

	if rule == nil {
		rule, err = pricing.NewRule(
			kernel.NewUUID(), cmd.DeliverySpeed(),
			cmd.BaseRate(), cmd.RatePerKg(), cmd.RatePerKm(),
		)
		if err != nil {
			return err
		}
		if err = pricingRepo.Add(ctx, rule); err != nil {
			return err
		}
	} else {
		if err = rule.UpdateRates(cmd.BaseRate(), cmd.RatePerKg(), cmd.RatePerKm()); err != nil {
			return err
		}
		if err = pricingRepo.Update(ctx, rule); err != nil {
			return err
		}
	}

	_ = uow.AuditLog().Append(ctx, cmd.ActorID(), "update_pricing_rule",
		cmd.DeliverySpeed().String(), "base "+cmd.BaseRate().String()+", per kg "+cmd.RatePerKg().String())

	return uow.Commit(ctx)
}
