package queries

import (
	"errors"
	"time"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/guard"
)

var ErrGetCustomerBillsQueryIsNotConstructed = errors.New(
	"GetCustomerBillsQuery must be created via NewGetCustomerBillsQuery constructor",
)

// GetCustomerBillsQuery retrieves every bill issued to one customer,
// paid and unpaid alike. Backs the customer's billing history page.
type GetCustomerBillsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerBillsQuery creates a query for one customer's bills.
func NewGetCustomerBillsQuery(customerID kernel.UUID) (GetCustomerBillsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerBillsQuery{}, err
	}

	return GetCustomerBillsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCustomerBillsQueryIsNotConstructed if validation fails.
func (q GetCustomerBillsQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerBillsQueryIsNotConstructed)
}

// CustomerID returns the customer whose bills are requested.
func (q GetCustomerBillsQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerBillsQueryResponse is the read model of one bill joined with
// the tracking number of the parcel it charges for.
type GetCustomerBillsQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Amount         kernel.Money
	IsPaid         bool
	PaymentMethod  billing.PaymentMethod
	CreatedAt      time.Time
	PaidAt         *time.Time
}
