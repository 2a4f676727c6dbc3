package billrepo

import (
	"context"
	"errors"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormBillRepository implements BillRepository using GORM.
type GormBillRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBillRepository creates a new GORM bill repository.
func NewGormBillRepository(db *gorm.DB, tracker aggregateTracker) *GormBillRepository {
	return &GormBillRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new bill to the database. A second bill for the same parcel
// surfaces as a ConflictError.
func (r *GormBillRepository) Add(ctx context.Context, aggregate *billing.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("parcel bill")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing bill to the database.
func (r *GormBillRepository) Update(ctx context.Context, aggregate *billing.Bill) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&BillDTO{}).
		Where("id = ?", dto.ID).
		Select("Amount", "IsPaid", "PaidAt").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a bill by ID.
func (r *GormBillRepository) Get(ctx context.Context, id kernel.UUID) (*billing.Bill, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bill", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByParcelID retrieves the bill attached to a parcel.
func (r *GormBillRepository) GetByParcelID(ctx context.Context, parcelID kernel.UUID) (*billing.Bill, error) {
	if err := parcelID.Validate(); err != nil {
		return nil, err
	}

	var dto BillDTO
	if err := r.db.WithContext(ctx).First(&dto, "parcel_id = ?", parcelID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bill", parcelID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
