package parcel

import (
	"errors"

	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

// ErrRecipientIsNotConstructed is returned when a Recipient was not created
// via the NewRecipient constructor.
var ErrRecipientIsNotConstructed = errors.New("Recipient must be created via NewRecipient constructor")

// Recipient is the delivery target of a parcel: plain contact strings, no
// identity of its own.
type Recipient struct {
	name    string
	address string
	phone   string

	guard guard.ConstructorGuard
}

// NewRecipient creates a Recipient. Name, address and phone are all required.
func NewRecipient(name, address, phone string) (Recipient, error) {
	if name == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient name")
	}
	if address == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient address")
	}
	if phone == "" {
		return Recipient{}, errs.NewValueIsRequiredError("recipient phone")
	}

	return Recipient{
		name:    name,
		address: address,
		phone:   phone,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Recipient was created through the constructor.
func (r Recipient) Validate() error {
	return r.guard.Validate(ErrRecipientIsNotConstructed)
}

// Name returns the recipient's name.
func (r Recipient) Name() string {
	return r.name
}

// Address returns the recipient's address.
func (r Recipient) Address() string {
	return r.address
}

// Phone returns the recipient's phone number.
func (r Recipient) Phone() string {
	return r.phone
}
