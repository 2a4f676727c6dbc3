package commands

import (
	"errors"

	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/core/domain/model/user"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new account. Exactly
// the profile matching the role must be supplied; the password arrives in
// plaintext and is hashed during handling.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	password string
	fullName string
	email    string
	phone    string
	role     user.Role

	customer  *user.CustomerProfile
	driver    *user.DriverProfile
	warehouse *user.WarehouseProfile
	employee  *user.EmployeeProfile

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register an account.
// Validates the id, credentials and role; the profile match is checked by
// the handler when the aggregate is built.
func NewCreateUserCommand(
	userID kernel.UUID,
	username, password, fullName, email, phone string,
	role user.Role,
	customer *user.CustomerProfile,
	driver *user.DriverProfile,
	warehouse *user.WarehouseProfile,
	employee *user.EmployeeProfile,
) (CreateUserCommand, error) {
	cmd := CreateUserCommand{
		fullName:  fullName,
		email:     email,
		phone:     phone,
		customer:  customer,
		driver:    driver,
		warehouse: warehouse,
		employee:  employee,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateUserCommandIsNotConstructed if validation fails.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new account.
func (c CreateUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested login name.
func (c CreateUserCommand) Username() string {
	return c.username
}

// Password returns the plaintext password to hash.
func (c CreateUserCommand) Password() string {
	return c.password
}

// FullName returns the display name.
func (c CreateUserCommand) FullName() string {
	return c.fullName
}

// Email returns the contact email.
func (c CreateUserCommand) Email() string {
	return c.email
}

// Phone returns the contact phone number.
func (c CreateUserCommand) Phone() string {
	return c.phone
}

// Role returns the requested role.
func (c CreateUserCommand) Role() user.Role {
	return c.role
}

// CustomerProfile returns the customer payload, when supplied.
func (c CreateUserCommand) CustomerProfile() *user.CustomerProfile {
	return c.customer
}

// DriverProfile returns the driver payload, when supplied.
func (c CreateUserCommand) DriverProfile() *user.DriverProfile {
	return c.driver
}

// WarehouseProfile returns the warehouse payload, when supplied.
func (c CreateUserCommand) WarehouseProfile() *user.WarehouseProfile {
	return c.warehouse
}

// EmployeeProfile returns the employee payload, when supplied.
func (c CreateUserCommand) EmployeeProfile() *user.EmployeeProfile {
	return c.employee
}

func (c *CreateUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *CreateUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *CreateUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
