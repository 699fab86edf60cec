package ports

import (
	"context"

	"courier/internal/core/domain/model/customer"
	"courier/internal/core/domain/model/kernel"
)

type CustomerRepository interface {
	// Add stores a new customer. A duplicate email is errs.ErrConflict.
	Add(ctx context.Context, aggregate *customer.Customer) error

	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Exists is the cheap existence check used before creating jobs and payments.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
