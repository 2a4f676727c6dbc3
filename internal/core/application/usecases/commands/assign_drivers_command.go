package commands

import (
	"errors"

	"parceltrack/internal/pkg/guard"
)

var ErrAssignDriversCommandIsNotConstructed = errors.New(
	"AssignDriversCommand must be created via NewAssignDriversCommand constructor",
)

// AssignDriversCommand triggers round-robin assignment of every unassigned
// parcel in Sorting status to the driver pool. The batch is processed in one
// transaction, so re-running after a failure only touches parcels that are
// still unassigned.
//
// Example:
//
//	cmd := NewAssignDriversCommand()
//	handler := NewAssignDriversCommandHandler(uowFactory, dispatcher)
//	count, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("assignment failed: %v", err)
//	}
//	log.Printf("%d parcels dispatched", count)
type AssignDriversCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignDriversCommand creates a new command to trigger driver
// assignment. This is a parameterless command that processes the current
// unassigned batch.
func NewAssignDriversCommand() AssignDriversCommand {
	return AssignDriversCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignDriversCommandIsNotConstructed if validation fails.
func (c *AssignDriversCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignDriversCommandIsNotConstructed,
	)
}
