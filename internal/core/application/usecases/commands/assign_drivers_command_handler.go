package commands

import (
	"context"
	"strconv"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/services"
)

// AssignDriversCommandHandler orchestrates the driver assignment batch.
// Loads unassigned sorted parcels and the driver pool in deterministic
// order, dispatches them round robin and persists all changed parcels in a
// single transaction.
type AssignDriversCommandHandler struct {
	uowFactory ParcelUoWFactory
	dispatcher services.DriverDispatcher
}

// NewAssignDriversCommandHandler creates a handler for assignment batches.
// Requires a ParcelUoWFactory for transactional updates and the dispatcher.
func NewAssignDriversCommandHandler(uowFactory ParcelUoWFactory, dispatcher services.DriverDispatcher) AssignDriversCommandHandler {
	return AssignDriversCommandHandler{
		uowFactory: uowFactory,
		dispatcher: dispatcher,
	}
}

// Handle processes the assignment command and returns the number of parcels
// dispatched. An empty batch or an empty driver pool yields zero with no
// side effects, which makes repeated runs idempotent.
func (h AssignDriversCommandHandler) Handle(ctx context.Context, cmd AssignDriversCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	parcelRepo := uow.ParcelRepository()

	parcels, err := parcelRepo.GetAllUnassignedInSorting(ctx)
	if err != nil {
		return 0, err
	}
	if len(parcels) == 0 {
		return 0, nil
	}

	drivers, err := uow.UserRepository().GetAllDrivers(ctx)
	if err != nil {
		return 0, err
	}
	if len(drivers) == 0 {
		return 0, nil
	}

	count, err := h.dispatcher.Dispatch(parcels, drivers)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range parcels {
		if err = parcelRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	// The batch runs without a human actor, so the entry carries the zero id.
	_ = uow.AuditLog().Append(ctx, kernel.UUID{}, "auto_assign", "",
		"assigned "+strconv.Itoa(count))

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return count, nil
}
