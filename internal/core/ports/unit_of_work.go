package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per use case invocation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from it after
// Begin share the transaction. Rollback after Commit reports that no transaction is open.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	JobRepository() JobRepository
	DriverRepository() DriverRepository
	CustomerRepository() CustomerRepository
	PricingRuleRepository() PricingRuleRepository
	ProofOfDeliveryRepository() ProofOfDeliveryRepository
}
