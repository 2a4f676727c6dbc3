package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrTopUpBalanceCommandIsNotConstructed = errors.New(
	"TopUpBalanceCommand must be created via NewTopUpBalanceCommand constructor",
)

// TopUpBalanceCommand represents a request to credit a customer's balance.
type TopUpBalanceCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	amount     kernel.Money

	guard guard.ConstructorGuard
}

// NewTopUpBalanceCommand creates a command to credit a customer balance.
// The amount must be positive.
func NewTopUpBalanceCommand(customerID kernel.UUID, amount kernel.Money) (TopUpBalanceCommand, error) {
	cmd := TopUpBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setAmount(amount),
	); err != nil {
		return TopUpBalanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTopUpBalanceCommandIsNotConstructed if validation fails.
func (c TopUpBalanceCommand) Validate() error {
	return c.guard.Validate(ErrTopUpBalanceCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to credit.
func (c TopUpBalanceCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Amount returns the credit amount.
func (c TopUpBalanceCommand) Amount() kernel.Money {
	return c.amount
}

func (c *TopUpBalanceCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *TopUpBalanceCommand) setAmount(amount kernel.Money) error {
	if amount.IsZero() || amount.IsNegative() {
		return errs.NewValueIsInvalidError("top up amount")
	}
	c.amount = amount
	return nil
}
