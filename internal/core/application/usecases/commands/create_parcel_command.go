package commands

import (
	"errors"
	"fmt"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateParcelCommandIsNotConstructed = errors.New(
	"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
)

// CreateParcelCommand represents a request to register a new parcel with its
// bill. Encapsulates the sender, the recipient, the physical spec of the
// shipment and the requested payment method.
//
// Example:
//
//	cmd, err := NewCreateParcelCommand(
//	    kernel.NewUUID(), kernel.NewUUID(), senderID,
//	    recipient, 2.5, dimensions,
//	    parcel.SmallBox, kernel.Standard,
//	    declaredValue, "books", parcel.HandlingFlags{Fragile: true},
//	    billing.Cash,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid parcel data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID kernel.UUID
	billID   kernel.UUID
	senderID kernel.UUID

	recipient  parcel.Recipient
	weight     float64
	dimensions parcel.Dimensions

	packageType   parcel.PackageType
	deliverySpeed kernel.DeliverySpeed

	declaredValue      kernel.Money
	contentDescription string
	flags              parcel.HandlingFlags

	paymentMethod billing.PaymentMethod

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Validates identifiers, the recipient, positive weight and dimensions, the
// enums and the payment method. Returns an error if any validation fails.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	billID kernel.UUID,
	senderID kernel.UUID,
	recipient parcel.Recipient,
	weight float64,
	dimensions parcel.Dimensions,
	packageType parcel.PackageType,
	deliverySpeed kernel.DeliverySpeed,
	declaredValue kernel.Money,
	contentDescription string,
	flags parcel.HandlingFlags,
	paymentMethod billing.PaymentMethod,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		declaredValue:      declaredValue,
		contentDescription: contentDescription,
		flags:              flags,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setBillID(billID),
		cmd.setSenderID(senderID),
		cmd.setRecipient(recipient),
		cmd.setWeight(weight),
		cmd.setDimensions(dimensions),
		cmd.setPackageType(packageType),
		cmd.setDeliverySpeed(deliverySpeed),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateParcelCommandIsNotConstructed if validation fails.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the identifier for the new parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// BillID returns the identifier for the new bill.
func (c CreateParcelCommand) BillID() kernel.UUID {
	return c.billID
}

// SenderID returns the owning customer's identifier.
func (c CreateParcelCommand) SenderID() kernel.UUID {
	return c.senderID
}

// Recipient returns the delivery target.
func (c CreateParcelCommand) Recipient() parcel.Recipient {
	return c.recipient
}

// Weight returns the parcel weight in kilograms.
func (c CreateParcelCommand) Weight() float64 {
	return c.weight
}

// Dimensions returns the physical measurements.
func (c CreateParcelCommand) Dimensions() parcel.Dimensions {
	return c.dimensions
}

// PackageType returns the packaging category.
func (c CreateParcelCommand) PackageType() parcel.PackageType {
	return c.packageType
}

// DeliverySpeed returns the requested delivery tier.
func (c CreateParcelCommand) DeliverySpeed() kernel.DeliverySpeed {
	return c.deliverySpeed
}

// DeclaredValue returns the sender-declared value of the contents.
func (c CreateParcelCommand) DeclaredValue() kernel.Money {
	return c.declaredValue
}

// ContentDescription returns the free-text content description.
func (c CreateParcelCommand) ContentDescription() string {
	return c.contentDescription
}

// Flags returns the special-handling markers.
func (c CreateParcelCommand) Flags() parcel.HandlingFlags {
	return c.flags
}

// PaymentMethod returns the requested settlement method. Prepaid customers
// have it overridden to Prepaid during handling.
func (c CreateParcelCommand) PaymentMethod() billing.PaymentMethod {
	return c.paymentMethod
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setBillID(billID kernel.UUID) error {
	if err := billID.Validate(); err != nil {
		return err
	}
	c.billID = billID
	return nil
}

func (c *CreateParcelCommand) setSenderID(senderID kernel.UUID) error {
	if err := senderID.Validate(); err != nil {
		return err
	}
	c.senderID = senderID
	return nil
}

func (c *CreateParcelCommand) setRecipient(recipient parcel.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	c.recipient = recipient
	return nil
}

func (c *CreateParcelCommand) setWeight(weight float64) error {
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight", fmt.Errorf("%v is not greater than 0", weight))
	}
	c.weight = weight
	return nil
}

func (c *CreateParcelCommand) setDimensions(dimensions parcel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	c.dimensions = dimensions
	return nil
}

func (c *CreateParcelCommand) setPackageType(packageType parcel.PackageType) error {
	if err := packageType.Validate(); err != nil {
		return err
	}
	c.packageType = packageType
	return nil
}

func (c *CreateParcelCommand) setDeliverySpeed(speed kernel.DeliverySpeed) error {
	if err := speed.Validate(); err != nil {
		return err
	}
	c.deliverySpeed = speed
	return nil
}

func (c *CreateParcelCommand) setPaymentMethod(method billing.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	c.paymentMethod = method
	return nil
}
