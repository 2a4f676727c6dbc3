package commands

import (
	"context"

	"parceltrack/internal/core/domain/services"
)

// AddTrackingEventCommandHandler handles role-gated status transitions.
// Authorization is checked strictly before any mutation; on success the
// parcel's status and its new tracking event are persisted atomically.
type AddTrackingEventCommandHandler struct {
	uowFactory ParcelUoWFactory
	policy     services.TransitionPolicy
}

// NewAddTrackingEventCommandHandler creates a handler for status
// transitions. Requires a ParcelUoWFactory and the transition policy.
func NewAddTrackingEventCommandHandler(uowFactory ParcelUoWFactory, policy services.TransitionPolicy) AddTrackingEventCommandHandler {
	return AddTrackingEventCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
	}
}

// Handle processes the transition command. Returns an ObjectNotFoundError
// for an unknown tracking number or actor, a NotAuthorizedError or
// services.ErrBackwardTransition when the role gating rejects the request,
// and nil on success.
func (h AddTrackingEventCommandHandler) Handle(ctx context.Context, cmd AddTrackingEventCommand) error {
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

	parcelRepo := uow.ParcelRepository()
	aggregate, err := parcelRepo.GetByTrackingNumber(ctx, cmd.TrackingNumber())
	if err != nil {
		return err
	}

	if err = h.policy.Authorize(actor, aggregate.Status(), cmd.Target()); err != nil {
		return err
	}

	actorID := cmd.ActorID()
	if err = aggregate.TransitionTo(cmd.Target(), cmd.Location(), cmd.Description(), &actorID); err != nil {
		return err
	}

	if err = parcelRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	_ = uow.AuditLog().Append(ctx, cmd.ActorID(), "add_tracking_event",
		cmd.TrackingNumber().String(), "status "+cmd.Target().String())

	return uow.Commit(ctx)
}
