package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAddTrackingEventHandler(factory *MockParcelUoWFactory) commands.AddTrackingEventCommandHandler {
	return commands.NewAddTrackingEventCommandHandler(factory, services.NewTransitionPolicy())
}

func TestAddTrackingEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testWarehouseStaff(t)
	aggregate := testParcel(t, actor.ID())

	cmd, err := commands.NewAddTrackingEventCommand(
		aggregate.TrackingNumber(), parcel.PickedUp, "Depot 4", "Collected from sender", actor.ID(),
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	userRepo := new(MockUserRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, actor.ID()).Return(actor, nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("GetByTrackingNumber", ctx, aggregate.TrackingNumber()).Return(aggregate, nil).Once(),
		parcelRepo.On("Update", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("AuditLog").Return(auditLog).Once(),
		auditLog.On("Append", ctx, actor.ID(), "add_tracking_event", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = newAddTrackingEventHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.PickedUp, aggregate.Status())
	require.Len(t, aggregate.Events(), 2)
	uow.AssertExpectations(t)
}

func TestAddTrackingEventCommandHandler_Handle_AuthorizationBeforeMutation(t *testing.T) {
	ctx := t.Context()
	customer := testCustomer(t, user.Contract, 0)
	aggregate := testParcel(t, customer.ID())

	cmd, err := commands.NewAddTrackingEventCommand(
		aggregate.TrackingNumber(), parcel.PickedUp, "Depot 4", "Collected", customer.ID(),
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	userRepo.On("Get", ctx, customer.ID()).Return(customer, nil).Once()
	parcelRepo.On("GetByTrackingNumber", ctx, aggregate.TrackingNumber()).Return(aggregate, nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = newAddTrackingEventHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	assert.Equal(t, parcel.Created, aggregate.Status())
	assert.Len(t, aggregate.Events(), 1)
	parcelRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAddTrackingEventCommandHandler_Handle_BackwardTransition(t *testing.T) {
	ctx := t.Context()
	actor := testWarehouseStaff(t)
	aggregate := testParcel(t, actor.ID())
	require.NoError(t, aggregate.TransitionTo(parcel.InTransit, "Hub 2", "Departed", nil))

	cmd, err := commands.NewAddTrackingEventCommand(
		aggregate.TrackingNumber(), parcel.PickedUp, "Depot 4", "Re-scan", actor.ID(),
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	userRepo.On("Get", ctx, actor.ID()).Return(actor, nil).Once()
	parcelRepo.On("GetByTrackingNumber", ctx, aggregate.TrackingNumber()).Return(aggregate, nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = newAddTrackingEventHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrBackwardTransition)
	assert.Equal(t, parcel.InTransit, aggregate.Status())
}

func TestAddTrackingEventCommandHandler_Handle_UnknownTrackingNumber(t *testing.T) {
	ctx := t.Context()
	actor := testWarehouseStaff(t)
	aggregate := testParcel(t, actor.ID())

	cmd, err := commands.NewAddTrackingEventCommand(
		aggregate.TrackingNumber(), parcel.PickedUp, "Depot 4", "Collected", actor.ID(),
	)
	require.NoError(t, err)

	parcelRepo := new(MockParcelRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	userRepo.On("Get", ctx, actor.ID()).Return(actor, nil).Once()
	parcelRepo.On("GetByTrackingNumber", ctx, aggregate.TrackingNumber()).
		Return(nil, errs.NewObjectNotFoundError("trackingNumber", aggregate.TrackingNumber().String())).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = newAddTrackingEventHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestAddTrackingEventCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.AddTrackingEventCommand{} // not constructed properly

	factory := new(MockParcelUoWFactory)

	err := newAddTrackingEventHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAddTrackingEventCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
