// Package userrepo provides data transfer objects and mapping functions for user persistence.
// Users of every role share one table; the role decides which of the nullable
// profile columns are populated.
package userrepo

import (
	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting user records.
// Customer, driver, warehouse and employee payloads map to nullable columns
// so a single table serves all roles.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username     string    `gorm:"uniqueIndex"`
	PasswordHash string
	FullName     string
	Email        string `gorm:"uniqueIndex"`
	Phone        string
	Role         int `gorm:"index"`

	CustomerType      *int
	BillingPreference *int
	Balance           *int64

	VehicleID  *string
	LocationID *string
	Department *string
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
// Only the profile columns of the user's role are populated.
func fromDomain(aggregate *user.User) UserDTO {
	dto := UserDTO{
		ID:           aggregate.ID().Bytes(),
		Username:     aggregate.Username(),
		PasswordHash: aggregate.PasswordHash(),
		FullName:     aggregate.FullName(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Role:         int(aggregate.Role()),
	}

	if profile := aggregate.CustomerProfile(); profile != nil {
		customerType := int(profile.CustomerType)
		billingPreference := int(profile.BillingPreference)
		balance := profile.Balance.Cents()
		dto.CustomerType = &customerType
		dto.BillingPreference = &billingPreference
		dto.Balance = &balance
	}

	if profile := aggregate.DriverProfile(); profile != nil {
		vehicleID := profile.VehicleID
		dto.VehicleID = &vehicleID
	}

	if profile := aggregate.WarehouseProfile(); profile != nil {
		locationID := profile.LocationID
		dto.LocationID = &locationID
	}

	if profile := aggregate.EmployeeProfile(); profile != nil {
		department := profile.Department
		dto.Department = &department
	}

	return dto
}

// toDomain converts a database DTO to a user domain aggregate using RestoreUser.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var customer *user.CustomerProfile
	if dto.CustomerType != nil && dto.BillingPreference != nil && dto.Balance != nil {
		customer = &user.CustomerProfile{
			CustomerType:      user.CustomerType(*dto.CustomerType),
			BillingPreference: billing.PaymentMethod(*dto.BillingPreference),
			Balance:           kernel.MoneyFromCents(*dto.Balance),
		}
	}

	var driver *user.DriverProfile
	if dto.VehicleID != nil {
		driver = &user.DriverProfile{VehicleID: *dto.VehicleID}
	}

	var warehouse *user.WarehouseProfile
	if dto.LocationID != nil {
		warehouse = &user.WarehouseProfile{LocationID: *dto.LocationID}
	}

	var employee *user.EmployeeProfile
	if dto.Department != nil {
		employee = &user.EmployeeProfile{Department: *dto.Department}
	}

	return user.RestoreUser(
		id,
		dto.Username,
		dto.PasswordHash,
		dto.FullName,
		dto.Email,
		dto.Phone,
		user.Role(dto.Role),
		customer,
		driver,
		warehouse,
		employee,
	)
}
