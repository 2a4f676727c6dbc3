package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateParcelCommand(t *testing.T, senderID kernel.UUID, method billing.PaymentMethod) commands.CreateParcelCommand {
	t.Helper()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), kernel.NewUUID(), senderID,
		testRecipient(t), 2.0, testDimensions(t),
		parcel.SmallBox, kernel.Standard,
		kernel.ZeroMoney(), "books", parcel.HandlingFlags{},
		method,
	)
	require.NoError(t, err)
	return cmd
}

func newCreateParcelHandler(factory *MockUoWFactory) commands.CreateParcelCommandHandler {
	return commands.NewCreateParcelCommandHandler(factory, services.NewCostCalculator(slog.Default()))
}

func TestCreateParcelCommandHandler_Handle_Cash(t *testing.T) {
	ctx := t.Context()
	sender := testCustomer(t, user.Contract, 0)
	cmd := newCreateParcelCommand(t, sender.ID(), billing.Cash)

	parcelRepo := new(MockParcelRepository)
	billRepo := new(MockBillRepository)
	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	var createdBill *billing.Bill
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once(),
		uow.On("PricingRepository").Return(pricingRepo).Once(),
		pricingRepo.On("GetBySpeed", ctx, kernel.Standard).Return(standardRule(t), nil).Once(),
		uow.On("ParcelRepository").Return(parcelRepo).Once(),
		parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("BillRepository").Return(billRepo).Once(),
		billRepo.On("Add", ctx, mock.AnythingOfType("*billing.Bill")).Run(func(args mock.Arguments) {
			createdBill = args.Get(1).(*billing.Bill)
		}).Return(nil).Once(),
		uow.On("AuditLog").Return(auditLog).Once(),
		auditLog.On("Append", ctx, sender.ID(), "create_package", mock.Anything, mock.Anything).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	created, err := newCreateParcelHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, parcel.Created, created.Status())
	// base 100.00 + 2kg * 10.00 = 120.00
	assert.Equal(t, int64(12000), created.ShippingCost().Cents())
	require.Len(t, created.Events(), 1)

	require.NotNil(t, created.EstimatedDelivery())
	expectedETA := time.Now().AddDate(0, 0, kernel.Standard.TransitDays())
	assert.WithinDuration(t, expectedETA, *created.EstimatedDelivery(), time.Minute)

	require.NotNil(t, createdBill)
	assert.False(t, createdBill.IsPaid())
	assert.Equal(t, int64(12000), createdBill.Amount().Cents())
	assert.Equal(t, billing.Cash, createdBill.PaymentMethod())
	uow.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_CreditCardSettlesImmediately(t *testing.T) {
	ctx := t.Context()
	sender := testCustomer(t, user.Contract, 0)
	cmd := newCreateParcelCommand(t, sender.ID(), billing.CreditCard)

	parcelRepo := new(MockParcelRepository)
	billRepo := new(MockBillRepository)
	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("PricingRepository").Return(pricingRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("BillRepository").Return(billRepo).Once()
	uow.On("AuditLog").Return(auditLog).Once()
	userRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once()
	pricingRepo.On("GetBySpeed", ctx, kernel.Standard).Return(standardRule(t), nil).Once()
	parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()
	auditLog.On("Append", ctx, sender.ID(), "create_package", mock.Anything, mock.Anything).Return(nil).Once()

	var createdBill *billing.Bill
	billRepo.On("Add", ctx, mock.AnythingOfType("*billing.Bill")).Run(func(args mock.Arguments) {
		createdBill = args.Get(1).(*billing.Bill)
	}).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateParcelHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, createdBill)
	assert.True(t, createdBill.IsPaid())
	assert.NotNil(t, createdBill.PaidAt())
}

func TestCreateParcelCommandHandler_Handle_PrepaidDebitsBalance(t *testing.T) {
	ctx := t.Context()
	// balance 500.00, cost 120.00 -> 380.00
	sender := testCustomer(t, user.PrepaidCustomer, 50000)
	// Requested cash is overridden to prepaid for prepaid customers.
	cmd := newCreateParcelCommand(t, sender.ID(), billing.Cash)

	parcelRepo := new(MockParcelRepository)
	billRepo := new(MockBillRepository)
	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("PricingRepository").Return(pricingRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("BillRepository").Return(billRepo).Once()
	uow.On("AuditLog").Return(auditLog).Once()
	userRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once()
	userRepo.On("Update", ctx, sender).Return(nil).Once()
	pricingRepo.On("GetBySpeed", ctx, kernel.Standard).Return(standardRule(t), nil).Once()
	parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()
	auditLog.On("Append", ctx, sender.ID(), "create_package", mock.Anything, mock.Anything).Return(nil).Once()

	var createdBill *billing.Bill
	billRepo.On("Add", ctx, mock.AnythingOfType("*billing.Bill")).Run(func(args mock.Arguments) {
		createdBill = args.Get(1).(*billing.Bill)
	}).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateParcelHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(38000), sender.Balance().Cents())
	require.NotNil(t, createdBill)
	assert.True(t, createdBill.IsPaid())
	assert.Equal(t, billing.Prepaid, createdBill.PaymentMethod())
}

func TestCreateParcelCommandHandler_Handle_PrepaidInsufficientBalance(t *testing.T) {
	ctx := t.Context()
	// balance 100.00 < cost 120.00
	sender := testCustomer(t, user.PrepaidCustomer, 10000)
	cmd := newCreateParcelCommand(t, sender.ID(), billing.Cash)

	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("PricingRepository").Return(pricingRepo).Once()
	userRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once()
	pricingRepo.On("GetBySpeed", ctx, kernel.Standard).Return(standardRule(t), nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateParcelHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, user.ErrInsufficientBalance)
	assert.Equal(t, int64(10000), sender.Balance().Cents())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateParcelCommandHandler_Handle_ZeroCostWithoutRule(t *testing.T) {
	ctx := t.Context()
	sender := testCustomer(t, user.Contract, 0)
	cmd := newCreateParcelCommand(t, sender.ID(), billing.Cash)

	parcelRepo := new(MockParcelRepository)
	billRepo := new(MockBillRepository)
	userRepo := new(MockUserRepository)
	pricingRepo := new(MockPricingRepository)
	auditLog := new(MockAuditLog)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo)
	uow.On("PricingRepository").Return(pricingRepo).Once()
	uow.On("ParcelRepository").Return(parcelRepo).Once()
	uow.On("BillRepository").Return(billRepo).Once()
	uow.On("AuditLog").Return(auditLog).Once()
	userRepo.On("Get", ctx, sender.ID()).Return(sender, nil).Once()
	pricingRepo.On("GetBySpeed", ctx, kernel.Standard).Return(nil, nil).Once()
	parcelRepo.On("Add", ctx, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once()
	billRepo.On("Add", ctx, mock.AnythingOfType("*billing.Bill")).Return(nil).Once()
	auditLog.On("Append", ctx, sender.ID(), "create_package", mock.Anything, mock.Anything).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	created, err := newCreateParcelHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.ShippingCost().IsZero())
}

func TestCreateParcelCommandHandler_Handle_SenderNotACustomer(t *testing.T) {
	ctx := t.Context()
	driver := testDriver(t, "asmith", "Alex Smith")
	cmd := newCreateParcelCommand(t, driver.ID(), billing.Cash)

	userRepo := new(MockUserRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	userRepo.On("Get", ctx, driver.ID()).Return(driver, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err := newCreateParcelHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrSenderIsNotACustomer)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateParcelCommand{} // not constructed properly

	factory := new(MockUoWFactory)

	_, err := newCreateParcelHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCreateParcelCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateParcelCommand_RejectsBadInput(t *testing.T) {
	t.Run("non-positive weight", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testRecipient(t), 0, testDimensions(t),
			parcel.SmallBox, kernel.Standard,
			kernel.ZeroMoney(), "", parcel.HandlingFlags{}, billing.Cash,
		)

		require.Error(t, err)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			testRecipient(t), 2, testDimensions(t),
			parcel.SmallBox, kernel.Standard,
			kernel.ZeroMoney(), "", parcel.HandlingFlags{}, billing.PaymentMethodUnknown,
		)

		require.Error(t, err)
	})

	t.Run("unconstructed recipient", func(t *testing.T) {
		_, err := commands.NewCreateParcelCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			parcel.Recipient{}, 2, testDimensions(t),
			parcel.SmallBox, kernel.Standard,
			kernel.ZeroMoney(), "", parcel.HandlingFlags{}, billing.Cash,
		)

		require.Error(t, err)
	})
}
