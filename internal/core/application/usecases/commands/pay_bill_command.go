package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrPayBillCommandIsNotConstructed = errors.New(
	"PayBillCommand must be created via NewPayBillCommand constructor",
)

// PayBillCommand represents a customer's request to settle a bill from their
// balance. The bill must belong to the paying customer.
//
// Example:
//
//	cmd, err := NewPayBillCommand(billID, customerID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, billing.ErrBillAlreadyPaid):
//	    // nothing to do
//	case errors.Is(err, user.ErrInsufficientBalance):
//	    // ask the customer to top up
//	}
type PayBillCommand struct { //nolint:recvcheck //using for validation
	billID     kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayBillCommand creates a command to settle a bill from the customer
// balance. Validates both identifiers.
func NewPayBillCommand(billID, customerID kernel.UUID) (PayBillCommand, error) {
	cmd := PayBillCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBillID(billID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return PayBillCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPayBillCommandIsNotConstructed if validation fails.
func (c PayBillCommand) Validate() error {
	return c.guard.Validate(ErrPayBillCommandIsNotConstructed)
}

// BillID returns the identifier of the bill to settle.
func (c PayBillCommand) BillID() kernel.UUID {
	return c.billID
}

// CustomerID returns the paying customer's identifier.
func (c PayBillCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c *PayBillCommand) setBillID(billID kernel.UUID) error {
	if err := billID.Validate(); err != nil {
		return err
	}
	c.billID = billID
	return nil
}

func (c *PayBillCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
