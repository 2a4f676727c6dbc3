package commands_test

import (
	"testing"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/parcel"
	"parceltrack/internal/core/domain/model/pricing"
	"parceltrack/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func testRecipient(t *testing.T) parcel.Recipient {
	t.Helper()
	recipient, err := parcel.NewRecipient("Jane Doe", "12 Harbour Rd", "555-0199")
	require.NoError(t, err)
	return recipient
}

func testDimensions(t *testing.T) parcel.Dimensions {
	t.Helper()
	dimensions, err := parcel.NewDimensions(30, 20, 40)
	require.NoError(t, err)
	return dimensions
}

func testParcel(t *testing.T, senderID kernel.UUID) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(
		kernel.NewUUID(), kernel.NewTrackingNumber(), senderID,
		testRecipient(t), 2.0, testDimensions(t),
		parcel.SmallBox, kernel.Standard,
		kernel.ZeroMoney(), "books", parcel.HandlingFlags{},
		kernel.MoneyFromCents(12000),
	)
	require.NoError(t, err)
	return p
}

func testCustomer(t *testing.T, customerType user.CustomerType, balanceCents int64) *user.User {
	t.Helper()
	u, err := user.NewCustomer(
		kernel.NewUUID(), "jdoe", "$2a$10$hash", "Jane Doe", "jane@example.com", "555-0199",
		user.CustomerProfile{
			CustomerType:      customerType,
			BillingPreference: billing.Monthly,
			Balance:           kernel.MoneyFromCents(balanceCents),
		},
	)
	require.NoError(t, err)
	return u
}

func testDriver(t *testing.T, username, fullName string) *user.User {
	t.Helper()
	u, err := user.NewDriver(
		kernel.NewUUID(), username, "$2a$10$hash", fullName, username+"@example.com", "555-0100",
		user.DriverProfile{VehicleID: "VAN-12"},
	)
	require.NoError(t, err)
	return u
}

func testWarehouseStaff(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewWarehouseStaff(
		kernel.NewUUID(), "wlee", "$2a$10$hash", "Wen Lee", "wen@example.com", "555-0102",
		user.WarehouseProfile{LocationID: "WH-3"},
	)
	require.NoError(t, err)
	return u
}

func testAdmin(t *testing.T) *user.User {
	t.Helper()
	u, err := user.NewEmployee(
		kernel.NewUUID(), "admin", "$2a$10$hash", "Sam Park", "sam@example.com", "555-0101",
		user.Admin, user.EmployeeProfile{Department: "operations"},
	)
	require.NoError(t, err)
	return u
}

func standardRule(t *testing.T) *pricing.Rule {
	t.Helper()
	// base=100.00, per_kg=10.00
	rule, err := pricing.NewRule(
		kernel.NewUUID(), kernel.Standard,
		kernel.MoneyFromCents(10000), kernel.MoneyFromCents(1000), kernel.ZeroMoney(),
	)
	require.NoError(t, err)
	return rule
}

func testBill(t *testing.T, customerID kernel.UUID, amountCents int64) *billing.Bill {
	t.Helper()
	b, err := billing.NewBill(
		kernel.NewUUID(), customerID, kernel.NewUUID(),
		kernel.MoneyFromCents(amountCents), billing.Cash,
	)
	require.NoError(t, err)
	return b
}
