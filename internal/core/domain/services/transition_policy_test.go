package services_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/core/domain/services"
	"parceltrack/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func userWithRole(t *testing.T, role user.Role) *user.User {
	t.Helper()

	var (
		u   *user.User
		err error
	)
	switch role {
	case user.Customer:
		u, err = user.NewCustomer(
			kernel.NewUUID(), "cust", "$2a$10$hash", "Jane Doe", "jane@example.com", "555-0199",
			user.CustomerProfile{CustomerType: user.Contract, BillingPreference: billing.Monthly},
		)
	case user.Driver:
		u, err = user.NewDriver(
			kernel.NewUUID(), "drv", "$2a$10$hash", "Alex Smith", "alex@example.com", "555-0100",
			user.DriverProfile{VehicleID: "VAN-12"},
		)
	case user.Warehouse:
		u, err = user.NewWarehouseStaff(
			kernel.NewUUID(), "wh", "$2a$10$hash", "Wen Lee", "wen@example.com", "555-0102",
			user.WarehouseProfile{LocationID: "WH-3"},
		)
	default:
		u, err = user.NewEmployee(
			kernel.NewUUID(), "emp", "$2a$10$hash", "Sam Park", "sam@example.com", "555-0101",
			role, user.EmployeeProfile{Department: "operations"},
		)
	}
	require.NoError(t, err)
	return u
}

func TestTransitionPolicy_Authorize(t *testing.T) {
	policy := services.NewTransitionPolicy()

	t.Run("customers may never transition", func(t *testing.T) {
		customer := userWithRole(t, user.Customer)

		err := policy.Authorize(customer, parcel.Created, parcel.PickedUp)

		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("drivers report delivery outcomes only", func(t *testing.T) {
		driver := userWithRole(t, user.Driver)

		for _, target := range []parcel.Status{
			parcel.Delivered, parcel.Exception, parcel.Lost, parcel.Delayed, parcel.Damaged,
		} {
			require.NoError(t, policy.Authorize(driver, parcel.OutForDelivery, target), target.String())
		}

		err := policy.Authorize(driver, parcel.InTransit, parcel.Sorting)
		require.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("warehouse moves parcels strictly forward", func(t *testing.T) {
		warehouse := userWithRole(t, user.Warehouse)

		require.NoError(t, policy.Authorize(warehouse, parcel.InTransit, parcel.Sorting))
		require.NoError(t, policy.Authorize(warehouse, parcel.Created, parcel.PickedUp))

		err := policy.Authorize(warehouse, parcel.InTransit, parcel.PickedUp)
		require.ErrorIs(t, err, services.ErrBackwardTransition)

		err = policy.Authorize(warehouse, parcel.InTransit, parcel.InTransit)
		require.ErrorIs(t, err, services.ErrBackwardTransition)
	})

	t.Run("warehouse may always flag exceptions", func(t *testing.T) {
		warehouse := userWithRole(t, user.Warehouse)

		for _, target := range []parcel.Status{
			parcel.Exception, parcel.Lost, parcel.Delayed, parcel.Damaged,
		} {
			require.NoError(t, policy.Authorize(warehouse, parcel.Delivered, target), target.String())
		}
	})

	t.Run("warehouse cannot dispatch or deliver", func(t *testing.T) {
		warehouse := userWithRole(t, user.Warehouse)

		for _, target := range []parcel.Status{
			parcel.OutForDelivery, parcel.Delivered, parcel.Created,
		} {
			err := policy.Authorize(warehouse, parcel.Sorting, target)

			require.ErrorIs(t, err, errs.ErrNotAuthorized, target.String())
		}
	})

	t.Run("ordering stops constraining once the parcel left sorting", func(t *testing.T) {
		warehouse := userWithRole(t, user.Warehouse)

		require.NoError(t, policy.Authorize(warehouse, parcel.OutForDelivery, parcel.Sorting))
	})

	t.Run("admin and customer service are unrestricted", func(t *testing.T) {
		for _, role := range []user.Role{user.Admin, user.CustomerService} {
			actor := userWithRole(t, role)

			require.NoError(t, policy.Authorize(actor, parcel.Delivered, parcel.Created), role.String())
			require.NoError(t, policy.Authorize(actor, parcel.InTransit, parcel.PickedUp), role.String())
		}
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		admin := userWithRole(t, user.Admin)

		err := policy.Authorize(admin, parcel.Created, parcel.StatusUnknown)

		require.Error(t, err)
	})
}
