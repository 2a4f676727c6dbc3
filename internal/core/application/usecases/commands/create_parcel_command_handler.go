package commands

import (
	"context"
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
)

// ErrSenderIsNotACustomer is returned when the sender of a new parcel does
// not carry a customer profile.
var ErrSenderIsNotACustomer = errors.New("sender must be a customer")

// CreateParcelCommandHandler handles the business logic for parcel creation.
// Computes the shipping cost from the pricing table, opens the bill, settles
// it according to the payment method and persists parcel, initial tracking
// event and bill as one atomic unit.
//
// Settlement rules:
//   - A prepaid sender has the requested method overridden to Prepaid and
//     the cost debited from the balance; insufficient balance rejects the
//     whole creation.
//   - Credit card and mobile payments mark the bill paid at creation.
//   - Cash and monthly bills stay unpaid for later settlement.
type CreateParcelCommandHandler struct {
	uowFactory UoWFactory
	calculator services.CostCalculator
}

// NewCreateParcelCommandHandler creates a handler for parcel creation.
// Requires a UoWFactory for transactional persistence and the cost
// calculator.
func NewCreateParcelCommandHandler(uowFactory UoWFactory, calculator services.CostCalculator) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the parcel creation command and returns the created
// parcel. A duplicate tracking number surfaces as a ConflictError; the
// caller may retry, which generates a fresh number.
func (h CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (*parcel.Parcel, error) {
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

	userRepo := uow.UserRepository()

	sender, err := userRepo.Get(ctx, cmd.SenderID())
	if err != nil {
		return nil, err
	}
	if sender.CustomerProfile() == nil {
		return nil, ErrSenderIsNotACustomer
	}

	paymentMethod := cmd.PaymentMethod()
	if sender.IsPrepaid() {
		paymentMethod = billing.Prepaid
	}

	rule, err := uow.PricingRepository().GetBySpeed(ctx, cmd.DeliverySpeed())
	if err != nil {
		return nil, err
	}

	cost, err := h.calculator.Calculate(cmd.Weight(), cmd.DeliverySpeed(), rule)
	if err != nil {
		return nil, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(), kernel.NewTrackingNumber(), cmd.SenderID(),
		cmd.Recipient(), cmd.Weight(), cmd.Dimensions(),
		cmd.PackageType(), cmd.DeliverySpeed(),
		cmd.DeclaredValue(), cmd.ContentDescription(), cmd.Flags(),
		cost,
	)
	if err != nil {
		return nil, err
	}
	newParcel.SetEstimatedDelivery(time.Now().AddDate(0, 0, cmd.DeliverySpeed().TransitDays()))

	bill, err := billing.NewBill(cmd.BillID(), cmd.SenderID(), newParcel.ID(), cost, paymentMethod)
	if err != nil {
		return nil, err
	}

	if err = h.settle(bill, sender, cost, paymentMethod); err != nil {
		return nil, err
	}

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return nil, err
	}
	if err = uow.BillRepository().Add(ctx, bill); err != nil {
		return nil, err
	}
	if paymentMethod == billing.Prepaid {
		if err = userRepo.Update(ctx, sender); err != nil {
			return nil, err
		}
	}

	_ = uow.AuditLog().Append(ctx, cmd.SenderID(), "create_package",
		newParcel.TrackingNumber().String(), "cost "+cost.String())

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParcel, nil
}

func (h CreateParcelCommandHandler) settle(
	bill *billing.Bill,
	sender *user.User,
	cost kernel.Money,
	method billing.PaymentMethod,
) error {
	if method == billing.Prepaid {
		if err := sender.DebitBalance(cost); err != nil {
			return err
		}
		return bill.MarkPaid()
	}

	if method.SettlesImmediately() {
		return bill.MarkPaid()
	}

	return nil
}
