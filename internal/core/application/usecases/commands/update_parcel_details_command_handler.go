package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/services"
)

// UpdateParcelDetailsCommandHandler handles partial updates of parcel
// attributes. When a pricing input changes, the shipping cost is recomputed
// from the current pricing table and the bill amount follows the new cost
// only while the bill is unpaid; paid bills are never retroactively amended.
type UpdateParcelDetailsCommandHandler struct {
	uowFactory UoWFactory
	calculator services.CostCalculator
}

// NewUpdateParcelDetailsCommandHandler creates a handler for parcel updates.
// Requires a UoWFactory for transactional persistence and the cost
// calculator.
func NewUpdateParcelDetailsCommandHandler(uowFactory UoWFactory, calculator services.CostCalculator) UpdateParcelDetailsCommandHandler {
	return UpdateParcelDetailsCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the update command and returns the updated parcel.
func (h UpdateParcelDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateParcelDetailsCommand) (*parcel.Parcel, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return nil, err
	}

	if err = h.apply(aggregate, cmd); err != nil {
		return nil, err
	}

	if cmd.Reprices() {
		if err = h.reprice(ctx, uow, aggregate); err != nil {
			return nil, err
		}
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	_ = uow.AuditLog().Append(ctx, cmd.ActorID(), "update_package",
		cmd.TrackingNumber().String(), "")

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

func (h UpdateParcelDetailsCommandHandler) apply(aggregate *parcel.Parcel, cmd UpdateParcelDetailsCommand) error {
	if cmd.Weight() != nil {
		if err := aggregate.UpdateWeight(*cmd.Weight()); err != nil {
			return err
		}
	}
	if cmd.Dimensions() != nil {
		if err := aggregate.UpdateDimensions(*cmd.Dimensions()); err != nil {
			return err
		}
	}
	if cmd.DeliverySpeed() != nil {
		if err := aggregate.ChangeDeliverySpeed(*cmd.DeliverySpeed()); err != nil {
			return err
		}
	}
	if cmd.UpdatesFlags() {
		flags := aggregate.Flags()
		if cmd.Hazardous() != nil {
			flags.Hazardous = *cmd.Hazardous()
		}
		if cmd.Fragile() != nil {
			flags.Fragile = *cmd.Fragile()
		}
		if cmd.International() != nil {
			flags.International = *cmd.International()
		}
		aggregate.SetFlags(flags)
	}
	return nil
}

func (h UpdateParcelDetailsCommandHandler) reprice(ctx context.Context, uow UoW, aggregate *parcel.Parcel) error {
	rule, err := uow.PricingRepository().GetBySpeed(ctx, aggregate.DeliverySpeed())
	if err != nil {
		return err
	}

	cost, err := h.calculator.Calculate(aggregate.Weight(), aggregate.DeliverySpeed(), rule)
	if err != nil {
		return err
	}

	aggregate.Reprice(cost)

	billRepo := uow.BillRepository()
	bill, err := billRepo.GetByParcelID(ctx, aggregate.ID())
	if err != nil {
		return err
	}

	if bill.IsPaid() {
		return nil
	}

	if err = bill.Revise(cost); err != nil {
		return err
	}

	return billRepo.Update(ctx, bill)
}
