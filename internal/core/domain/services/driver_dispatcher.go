package services

import (
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
)

// DriverDispatcher is a domain service assigning a batch of unassigned
// sorted parcels to the driver pool in strict round-robin order.
//
// Business rules:
//   - Parcels are taken in the caller-provided order, drivers likewise; the
//     caller must load both deterministically for reproducible assignment.
//   - Parcel i goes to driver i modulo the pool size, so drivers are reused
//     in order once the batch outgrows the pool.
//   - Each assignment advances the parcel to OutForDelivery and appends its
//     tracking event through the aggregate.
//   - No fair-share balancing across pre-existing assignments; the round
//     robin is stateless over the current batch.
type DriverDispatcher struct{}

// NewDriverDispatcher creates a new DriverDispatcher instance.
func NewDriverDispatcher() DriverDispatcher {
	return DriverDispatcher{}
}

// Dispatch assigns every parcel in the batch to a driver and returns the
// number of parcels processed. An empty batch or an empty pool yields zero
// with no side effects. Any failure aborts the batch; the caller must roll
// back the unit of work.
func (d DriverDispatcher) Dispatch(parcels []*parcel.Parcel, drivers []*user.User) (int, error) {
	if len(parcels) == 0 || len(drivers) == 0 {
		return 0, nil
	}

	for _, driver := range drivers {
		if err := driver.Validate(); err != nil {
			return 0, err
		}
		if driver.Role() != user.Driver {
			return 0, errs.NewValueIsInvalidError("driver pool: " + driver.Username())
		}
	}

	for i, p := range parcels {
		if err := p.Validate(); err != nil {
			return 0, err
		}

		driver := drivers[i%len(drivers)]
		if err := p.AssignDriver(driver.ID(), driver.FullName()); err != nil {
			return 0, err
		}
	}

	return len(parcels), nil
}
