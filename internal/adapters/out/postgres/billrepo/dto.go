// Package billrepo provides data transfer objects and mapping functions for bill persistence.
package billrepo

import (
	"time"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BillDTO represents the database structure for persisting bill aggregates.
// One bill exists per parcel, enforced by the unique index on parcel_id.
type BillDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID    uuid.UUID `gorm:"type:uuid;index"`
	ParcelID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Amount        int64
	IsPaid        bool
	PaymentMethod int
	CreatedAt     time.Time
	PaidAt        *time.Time
}

// TableName specifies the database table name for bill entities.
func (BillDTO) TableName() string {
	return "bills"
}

// fromDomain converts a bill domain aggregate to its database representation.
func fromDomain(aggregate *billing.Bill) BillDTO {
	return BillDTO{
		ID:            aggregate.ID().Bytes(),
		CustomerID:    aggregate.CustomerID().Bytes(),
		ParcelID:      aggregate.ParcelID().Bytes(),
		Amount:        aggregate.Amount().Cents(),
		IsPaid:        aggregate.IsPaid(),
		PaymentMethod: int(aggregate.PaymentMethod()),
		CreatedAt:     aggregate.CreatedAt(),
		PaidAt:        aggregate.PaidAt(),
	}
}

// toDomain converts a database DTO to a bill domain aggregate using RestoreBill.
func toDomain(dto BillDTO) (*billing.Bill, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	parcelID, err := kernel.UUIDFromBytes(dto.ParcelID[:])
	if err != nil {
		return nil, err
	}

	return billing.RestoreBill(
		id,
		customerID,
		parcelID,
		kernel.MoneyFromCents(dto.Amount),
		billing.PaymentMethod(dto.PaymentMethod),
		dto.IsPaid,
		dto.CreatedAt,
		dto.PaidAt,
	)
}
