package queries

import (
	"context"
	"database/sql"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCustomerBillsQueryHandler retrieves a customer's billing history from
// the database. Joins bills with parcels so the customer sees tracking
// numbers instead of internal parcel ids.
type GetCustomerBillsQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerBillsQueryHandler creates a handler for billing history queries.
// Requires a GORM database connection for query execution.
func NewGetCustomerBillsQueryHandler(db *gorm.DB) GetCustomerBillsQueryHandler {
	return GetCustomerBillsQueryHandler{db: db}
}

// Handle executes the query and returns the customer's bills, newest first.
// A customer without bills gets an empty slice, not an error.
func (h GetCustomerBillsQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerBillsQuery,
) ([]GetCustomerBillsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	bills := make([]GetCustomerBillsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			p.tracking_number,
			b.amount,
			b.is_paid,
			b.payment_method,
			b.created_at,
			b.paid_at
		FROM bills b
		JOIN parcels p ON p.id = b.parcel_id
		WHERE b.customer_id = ?
		ORDER BY b.created_at DESC, b.id
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var billResp GetCustomerBillsQueryResponse
		var id uuid.UUID
		var amount int64
		var paymentMethod int
		var paidAt sql.NullTime

		err = rows.Scan(
			&id,
			&billResp.TrackingNumber,
			&amount,
			&billResp.IsPaid,
			&paymentMethod,
			&billResp.CreatedAt,
			&paidAt,
		)
		if err != nil {
			return nil, err
		}

		billID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		billResp.ID = billID

		if paidAt.Valid {
			paid := paidAt.Time
			billResp.PaidAt = &paid
		}

		billResp.Amount = kernel.MoneyFromCents(amount)
		billResp.PaymentMethod = billing.PaymentMethod(paymentMethod)
		bills = append(bills, billResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bills, nil
}
