package user

import (
	"errors"

	"parceltrack/internal/core/domain/model/billing"
	"parceltrack/internal/core/domain/model/kernel"
	"parceltrack/internal/pkg/errs"
	"parceltrack/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User was not created via one
	// of the role constructors or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via a role constructor or RestoreUser")

	// ErrInsufficientBalance is returned when a debit exceeds the customer's
	// current balance.
	ErrInsufficientBalance = errors.New("customer balance is insufficient")

	// ErrNotACustomer is returned when a balance operation targets a user
	// without a customer profile.
	ErrNotACustomer = errors.New("user does not carry a customer profile")
)

// User is a single account record carrying a role discriminator and exactly
// one role-specific profile payload. There is no subtype hierarchy; the role
// decides which profile pointer is set.
type User struct {
	id           kernel.UUID
	username     string
	passwordHash string
	fullName     string
	email        string
	phone        string
	role         Role

	customer  *CustomerProfile
	driver    *DriverProfile
	warehouse *WarehouseProfile
	employee  *EmployeeProfile

	guard guard.ConstructorGuard
}

// CustomerProfile is the payload of customer users.
type CustomerProfile struct {
	CustomerType      CustomerType
	BillingPreference billing.PaymentMethod
	Balance           kernel.Money
}

// DriverProfile is the payload of driver users.
type DriverProfile struct {
	VehicleID string
}

// WarehouseProfile is the payload of warehouse users.
type WarehouseProfile struct {
	LocationID string
}

// EmployeeProfile is the payload of admin and customer service users.
type EmployeeProfile struct {
	Department string
}

// NewCustomer creates a customer user with a starting balance.
func NewCustomer(
	id kernel.UUID,
	username, passwordHash, fullName, email, phone string,
	profile CustomerProfile,
) (*User, error) {
	u, err := newUser(id, username, passwordHash, fullName, email, phone, Customer)
	if err != nil {
		return nil, err
	}

	if err = profile.CustomerType.Validate(); err != nil {
		return nil, err
	}
	if err = profile.BillingPreference.Validate(); err != nil {
		return nil, err
	}

	u.customer = &profile
	return u, nil
}

// NewDriver creates a driver user.
func NewDriver(
	id kernel.UUID,
	username, passwordHash, fullName, email, phone string,
	profile DriverProfile,
) (*User, error) {
	u, err := newUser(id, username, passwordHash, fullName, email, phone, Driver)
	if err != nil {
		return nil, err
	}

	u.driver = &profile
	return u, nil
}

// NewWarehouseStaff creates a warehouse user tied to a warehouse location.
func NewWarehouseStaff(
	id kernel.UUID,
	username, passwordHash, fullName, email, phone string,
	profile WarehouseProfile,
) (*User, error) {
	u, err := newUser(id, username, passwordHash, fullName, email, phone, Warehouse)
	if err != nil {
		return nil, err
	}

	u.warehouse = &profile
	return u, nil
}

// NewEmployee creates an admin or customer service user.
func NewEmployee(
	id kernel.UUID,
	username, passwordHash, fullName, email, phone string,
	role Role,
	profile EmployeeProfile,
) (*User, error) {
	if role != Admin && role != CustomerService {
		return nil, errs.NewValueIsInvalidError("role: " + role.String())
	}

	u, err := newUser(id, username, passwordHash, fullName, email, phone, role)
	if err != nil {
		return nil, err
	}

	u.employee = &profile
	return u, nil
}

// RestoreUser reconstructs a user from persistence. Exactly the profile
// matching the role must be supplied; the others must be nil.
func RestoreUser(
	id kernel.UUID,
	username, passwordHash, fullName, email, phone string,
	role Role,
	customer *CustomerProfile,
	driver *DriverProfile,
	warehouse *WarehouseProfile,
	employee *EmployeeProfile,
) (*User, error) {
	switch role { //nolint:exhaustive
	case Customer:
		if customer == nil {
			return nil, errs.NewValueIsRequiredError("customer profile")
		}
		u, err := NewCustomer(id, username, passwordHash, fullName, email, phone, *customer)
		if err != nil {
			return nil, err
		}
		return u, nil
	case Driver:
		if driver == nil {
			return nil, errs.NewValueIsRequiredError("driver profile")
		}
		return NewDriver(id, username, passwordHash, fullName, email, phone, *driver)
	case Warehouse:
		if warehouse == nil {
			return nil, errs.NewValueIsRequiredError("warehouse profile")
		}
		return NewWarehouseStaff(id, username, passwordHash, fullName, email, phone, *warehouse)
	case Admin, CustomerService:
		if employee == nil {
			return nil, errs.NewValueIsRequiredError("employee profile")
		}
		return NewEmployee(id, username, passwordHash, fullName, email, phone, role, *employee)
	default:
		return nil, errs.NewValueIsInvalidError("role")
	}
}

func newUser(
	id kernel.UUID,
	username, passwordHash, fullName, email, phone string,
	role Role,
) (*User, error) {
	u := &User{
		fullName: fullName,
		email:    email,
		phone:    phone,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// FullName returns the display name.
func (u *User) FullName() string {
	return u.fullName
}

// Email returns the contact email.
func (u *User) Email() string {
	return u.email
}

// Phone returns the contact phone number.
func (u *User) Phone() string {
	return u.phone
}

// Role returns the role discriminator.
func (u *User) Role() Role {
	return u.role
}

// CustomerProfile returns the customer payload, or nil for non-customers.
func (u *User) CustomerProfile() *CustomerProfile {
	return u.customer
}

// DriverProfile returns the driver payload, or nil for non-drivers.
func (u *User) DriverProfile() *DriverProfile {
	return u.driver
}

// WarehouseProfile returns the warehouse payload, or nil for non-warehouse
// users.
func (u *User) WarehouseProfile() *WarehouseProfile {
	return u.warehouse
}

// EmployeeProfile returns the employee payload, or nil for non-employees.
func (u *User) EmployeeProfile() *EmployeeProfile {
	return u.employee
}

// IsPrepaid reports whether the user is a prepaid customer whose balance is
// debited at parcel creation.
func (u *User) IsPrepaid() bool {
	return u.customer != nil && u.customer.CustomerType == PrepaidCustomer
}

// Balance returns the customer balance. Non-customers carry a zero balance.
func (u *User) Balance() kernel.Money {
	if u.customer == nil {
		return kernel.ZeroMoney()
	}
	return u.customer.Balance
}

// DebitBalance withdraws amount from the customer balance. A debit past zero
// is rejected with ErrInsufficientBalance and leaves the balance untouched.
func (u *User) DebitBalance(amount kernel.Money) error {
	if u.customer == nil {
		return ErrNotACustomer
	}
	if u.customer.Balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	u.customer.Balance = u.customer.Balance.Sub(amount)
	return nil
}

// CreditBalance tops up the customer balance. The amount must be positive.
func (u *User) CreditBalance(amount kernel.Money) error {
	if u.customer == nil {
		return ErrNotACustomer
	}
	if amount.IsZero() || amount.IsNegative() {
		return errs.NewValueIsInvalidError("top up amount")
	}

	u.customer.Balance = u.customer.Balance.Add(amount)
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = passwordHash
	return nil
}
