// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parceltrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// BillRepoFactory provides access to the bill repository within a transaction.
	BillRepoFactory interface {
		BillRepository() ports.BillRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// PricingRepoFactory provides access to the pricing repository within a transaction.
	PricingRepoFactory interface {
		PricingRepository() ports.PricingRepository
	}

	// AuditLogFactory provides access to the audit sink within a transaction.
	AuditLogFactory interface {
		AuditLog() ports.AuditLog
	}

	// UserUoW manages transactions touching only user records.
	// Used by account creation and balance top-ups.
	UserUoW interface {
		TxManager
		UserRepoFactory
		AuditLogFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// PricingUoW manages transactions touching pricing rules.
	PricingUoW interface {
		TxManager
		PricingRepoFactory
		UserRepoFactory
		AuditLogFactory
	}

	// PricingUoWFactory creates new pricing unit of work instances.
	PricingUoWFactory interface {
		Create() PricingUoW
	}

	// BillingUoW manages transactions coordinating bills and customer balances.
	BillingUoW interface {
		TxManager
		BillRepoFactory
		UserRepoFactory
		AuditLogFactory
	}

	// BillingUoWFactory creates new billing unit of work instances.
	BillingUoWFactory interface {
		Create() BillingUoW
	}

	// ParcelUoW manages transactions coordinating parcels and users.
	// Used by status transitions and driver assignment batches.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
		UserRepoFactory
		AuditLogFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// UoW manages transactions across every aggregate of the system.
	// Used by commands that create or reprice a parcel together with its bill.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   parcelRepo := uow.ParcelRepository()
	//   billRepo := uow.BillRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ParcelRepoFactory
		BillRepoFactory
		UserRepoFactory
		PricingRepoFactory
		AuditLogFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
