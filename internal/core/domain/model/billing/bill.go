package billing

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var (
	// ErrBillIsNotConstructed is returned when a Bill was not created via
	// NewBill or RestoreBill.
	ErrBillIsNotConstructed = errors.New("Bill must be created via NewBill or RestoreBill")

	// ErrBillAlreadyPaid is returned when mutating a bill that has already
	// been settled.
	ErrBillAlreadyPaid = errors.New("bill is already paid")
)

// Bill is the single payable record tied one-to-one to a parcel. It is
// created atomically with the parcel it bills for.
//
// Invariants:
//   - The amount mirrors the parcel's shipping cost at creation and may be
//     revised only while the bill is unpaid.
//   - Paid state moves one way, false to true, stamping paidAt exactly once.
type Bill struct {
	id            kernel.UUID
	customerID    kernel.UUID
	parcelID      kernel.UUID
	amount        kernel.Money
	isPaid        bool
	paymentMethod PaymentMethod
	createdAt     time.Time
	paidAt        *time.Time

	guard guard.ConstructorGuard
}

// NewBill opens an unpaid bill for a parcel. Settlement at creation is the
// caller's decision via MarkPaid, since prepaid settlement depends on a
// successful balance debit.
func NewBill(
	id kernel.UUID,
	customerID kernel.UUID,
	parcelID kernel.UUID,
	amount kernel.Money,
	paymentMethod PaymentMethod,
) (*Bill, error) {
	b := &Bill{
		amount:    amount,
		createdAt: time.Now(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setCustomerID(customerID),
		b.setParcelID(parcelID),
		b.setPaymentMethod(paymentMethod),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// RestoreBill reconstructs a bill from persistence, including its paid state
// and timestamps.
func RestoreBill(
	id kernel.UUID,
	customerID kernel.UUID,
	parcelID kernel.UUID,
	amount kernel.Money,
	paymentMethod PaymentMethod,
	isPaid bool,
	createdAt time.Time,
	paidAt *time.Time,
) (*Bill, error) {
	b, err := NewBill(id, customerID, parcelID, amount, paymentMethod)
	if err != nil {
		return nil, err
	}

	b.isPaid = isPaid
	b.createdAt = createdAt
	b.paidAt = paidAt
	return b, nil
}

// Validate ensures the Bill was created through a constructor.
func (b *Bill) Validate() error {
	if b == nil {
		return ErrBillIsNotConstructed
	}
	return b.guard.Validate(ErrBillIsNotConstructed)
}

// IsEqual compares two bills by their unique identifiers.
func (b *Bill) IsEqual(other *Bill) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the bill's unique identifier.
func (b *Bill) ID() kernel.UUID {
	return b.id
}

// CustomerID returns the identifier of the customer who owes the bill.
func (b *Bill) CustomerID() kernel.UUID {
	return b.customerID
}

// ParcelID returns the identifier of the billed parcel.
func (b *Bill) ParcelID() kernel.UUID {
	return b.parcelID
}

// Amount returns the current billed amount.
func (b *Bill) Amount() kernel.Money {
	return b.amount
}

// IsPaid reports whether the bill has been settled.
func (b *Bill) IsPaid() bool {
	return b.isPaid
}

// PaymentMethod returns the settlement method.
func (b *Bill) PaymentMethod() PaymentMethod {
	return b.paymentMethod
}

// CreatedAt returns the creation timestamp.
func (b *Bill) CreatedAt() time.Time {
	return b.createdAt
}

// PaidAt returns the settlement timestamp, or nil while unpaid.
func (b *Bill) PaidAt() *time.Time {
	return b.paidAt
}

// MarkPaid settles the bill and stamps the payment time. Settling an already
// paid bill returns ErrBillAlreadyPaid.
func (b *Bill) MarkPaid() error {
	if b.isPaid {
		return ErrBillAlreadyPaid
	}

	now := time.Now()
	b.isPaid = true
	b.paidAt = &now
	return nil
}

// Revise replaces the billed amount after a reprice of the parcel. Paid bills
// are never retroactively amended.
func (b *Bill) Revise(amount kernel.Money) error {
	if b.isPaid {
		return ErrBillAlreadyPaid
	}

	b.amount = amount
	return nil
}

func (b *Bill) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Bill) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	b.customerID = customerID
	return nil
}

func (b *Bill) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}
	b.parcelID = parcelID
	return nil
}

func (b *Bill) setPaymentMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	b.paymentMethod = method
	return nil
}
