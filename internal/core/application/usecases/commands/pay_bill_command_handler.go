package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/pkg/errs"
)

// PayBillCommandHandler handles balance-based bill settlement. The bill must
// exist, belong to the paying customer, be unpaid, and the balance must
// cover the full amount; otherwise nothing changes.
type PayBillCommandHandler struct {
	uowFactory BillingUoWFactory
}

// NewPayBillCommandHandler creates a handler for bill settlement.
// Requires a BillingUoWFactory for coordinating the bill and the balance.
func NewPayBillCommandHandler(uowFactory BillingUoWFactory) PayBillCommandHandler {
	return PayBillCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the settlement command. A bill not owned by the paying
// customer surfaces as an ObjectNotFoundError, an already-settled bill as
// billing.ErrBillAlreadyPaid and a short balance as
// user.ErrInsufficientBalance. On success the balance drops by exactly the
// bill amount and the bill flips to paid.
func (h PayBillCommandHandler) Handle(ctx context.Context, cmd PayBillCommand) error {
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

	billRepo := uow.BillRepository()
	bill, err := billRepo.Get(ctx, cmd.BillID())
	if err != nil {
		return err
	}

	// Ownership failures are indistinguishable from missing bills so that
	// customers cannot probe other customers' bill ids.
	if !bill.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewObjectNotFoundError("billID", cmd.BillID())
	}

	if bill.IsPaid() {
		return billing.ErrBillAlreadyPaid
	}

	userRepo := uow.UserRepository()
	customer, err := userRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customer.DebitBalance(bill.Amount()); err != nil {
		return err
	}
	if err = bill.MarkPaid(); err != nil {
		return err
	}

	if err = billRepo.Update(ctx, bill); err != nil {
		return err
	}
	if err = userRepo.Update(ctx, customer); err != nil {
		return err
	}

	_ = uow.AuditLog().Append(ctx, cmd.CustomerID(), "pay_bill",
		cmd.BillID().String(), "amount "+bill.Amount().String())

	return uow.Commit(ctx)
}
