package commands_test

import (
	"testing"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUpdatePricingRuleCommand(t *testing.T, actorID kernel.UUID) commands.UpdatePricingRuleCommand {
	t.Helper()
	cmd, err := commands.NewUpdatePricingRuleCommand(
		actorID, kernel.Standard,
		kernel.MoneyFromCents(12000), kernel.MoneyFromCents(1500), kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return cmd
}

func TestUpdatePricingRuleCommandHandler_Handle_UpdatesExistingRule(t *testing.T) {
	ctx := t.Context()
	admin := testAdmin(t)
	rule := standardRule(t)
	cmd := newUpdatePricingRuleCommand(t, admin.ID())

	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, admin.ID()).Return(admin, nil).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("GetBySpeed", ctx, kernel.Standard).Return(rule, nil).Once(),
		pricingRepo.On("Update", ctx, rule).Return(nil).Once(),
		uow.On("AuditLog").Return(auditLog).Once(),
		auditLog.On("Append", ctx, admin.ID(), "update_pricing_rule", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePricingRuleCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(12000), rule.BaseRate().Cents())
	assert.Equal(t, int64(1500), rule.RatePerKg().Cents())
	uow.AssertExpectations(t)
}

func TestUpdatePricingRuleCommandHandler_Handle_CreatesMissingRule(t *testing.T) {
	ctx := t.Context()
	admin := testAdmin(t)
	cmd := newUpdatePricingRuleCommand(t, admin.ID())

	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("PricingRepository").Return(pricingRepo).Once()
	uow.On("AuditLog").Return(auditLog).Once()
	userRepo.On("Get", ctx, admin.ID()).Return(admin, nil).Once()
	pricingRepo.On("GetBySpeed", ctx, kernel.Standard).Return(nil, nil).Once()
	pricingRepo.On("Add", ctx, mock.AnythingOfType("*pricing.Rule")).Return(nil).Once()
	auditLog.On("Append", ctx, admin.ID(), "update_pricing_rule", mock.Anything, mock.Anything).Return(nil).Once()

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePricingRuleCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	pricingRepo.AssertExpectations(t)
}

func TestUpdatePricingRuleCommandHandler_Handle_NonAdminRejected(t *testing.T) {
	ctx := t.Context()
	staff := testWarehouseStaff(t)
	cmd := newUpdatePricingRuleCommand(t, staff.ID())

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", ctx, staff.ID()).Return(staff, nil).Once()

	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdatePricingRuleCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestNewUpdatePricingRuleCommand_RejectsNegativeRates(t *testing.T) {
	_, err := commands.NewUpdatePricingRuleCommand(
		kernel.NewUUID(), kernel.Standard,
		kernel.MoneyFromCents(-1), kernel.ZeroMoney(), kernel.ZeroMoney(),
	)

	require.Error(t, err)
}

func TestCreateUserCommandHandler_Handle_DuplicateUsername(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateUserCommand(
		kernel.NewUUID(), "jdoe", "s3cret", "Jane Doe", "jane@example.com", "555-0199",
		user.Driver, nil, &user.DriverProfile{VehicleID: "VAN-12"}, nil, nil,
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).
		Return(errs.NewConflictError("username")).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUserCommandHandler(factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateUserCommandHandler_Handle_HashesPassword(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateUserCommand(
		kernel.NewUUID(), "jdoe", "s3cret", "Jane Doe", "jane@example.com", "555-0199",
		user.Driver, nil, &user.DriverProfile{VehicleID: "VAN-12"}, nil, nil,
	)
	require.NoError(t, err)

	userRepo := new(MockUserRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("AuditLog").Return(auditLog).Once()
	userRepo.On("Add", ctx, mock.AnythingOfType("*user.User")).Return(nil).Once()
	auditLog.On("Append", ctx, cmd.UserID(), "create_user", "jdoe", mock.Anything).Return(nil).Once()

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateUserCommandHandler(factory)
	created, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", created.PasswordHash())
	assert.True(t, user.CheckPassword(created.PasswordHash(), "s3cret"))
}
