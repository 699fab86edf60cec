// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courier/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	PricingRuleRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	ProofOfDeliveryRepoFactory interface {
		ProofOfDeliveryRepository() ports.ProofOfDeliveryRepository
	}

	// UoW spans jobs and everything a job references. Used by the dispatch, route,
	// proof-of-delivery and payment commands.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   j, err := uow.JobRepository().GetForUpdate(ctx, jobID)
	//   d, err := uow.DriverRepository().Get(ctx, driverID)
	//   // ... mutate and Update
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		JobRepoFactory
		DriverRepoFactory
		CustomerRepoFactory
		ProofOfDeliveryRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// DriverUoW manages transactions for driver-only operations.
	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// PricingUoW manages transactions for pricing rule operations.
	PricingUoW interface {
		TxManager
		PricingRuleRepoFactory
	}

	PricingUoWFactory interface {
		Create() PricingUoW
	}
)
