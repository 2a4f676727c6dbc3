package commands

import (
	"context"
)

// TopUpBalanceCommandHandler handles balance credits for customers.
type TopUpBalanceCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewTopUpBalanceCommandHandler creates a handler for balance top-ups.
func NewTopUpBalanceCommandHandler(uowFactory UserUoWFactory) TopUpBalanceCommandHandler {
	return TopUpBalanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the top-up command. An unknown customer surfaces as an
// ObjectNotFoundError and a non-customer account as user.ErrNotACustomer.
func (h TopUpBalanceCommandHandler) Handle(ctx context.Context, cmd TopUpBalanceCommand) error {
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

	userRepo := uow.UserRepository()
	customer, err := userRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = customer.CreditBalance(cmd.Amount()); err != nil {
		return err
	}

	if err = userRepo.Update(ctx, customer); err != nil {
		return err
	}

	_ = uow.AuditLog().Append(ctx, cmd.CustomerID(), "top_up_balance",
		cmd.CustomerID().String(), "amount "+cmd.Amount().String())

	return uow.Commit(ctx)
}
