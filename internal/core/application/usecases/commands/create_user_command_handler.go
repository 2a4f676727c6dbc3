package commands

import (
	"context"

	"parceltrack/internal/core/domain/model/user"
)

// CreateUserCommandHandler handles account registration. The password is
// hashed with bcrypt before the record is persisted; a duplicate username
// surfaces as a ConflictError.
type CreateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewCreateUserCommandHandler creates a handler for account registration.
func NewCreateUserCommandHandler(uowFactory UserUoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the created user.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	passwordHash, err := user.HashPassword(cmd.Password())
	if err != nil {
		return nil, err
	}

	aggregate, err := user.RestoreUser(
		cmd.UserID(), cmd.Username(), passwordHash,
		cmd.FullName(), cmd.Email(), cmd.Phone(),
		cmd.Role(),
		cmd.CustomerProfile(), cmd.DriverProfile(), cmd.WarehouseProfile(), cmd.EmployeeProfile(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	_ = uow.AuditLog().Append(ctx, cmd.UserID(), "create_user",
		cmd.Username(), "role "+cmd.Role().String())

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
