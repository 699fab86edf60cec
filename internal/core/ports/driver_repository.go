package ports

import (
	"context"
	"time"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
)

// DriverRepository persists driver aggregates.
type DriverRepository interface {
	// Add stores a new driver. A second profile for the same account is errs.ErrConflict.
	Add(ctx context.Context, aggregate *driver.Driver) error

	Update(ctx context.Context, aggregate *driver.Driver) error

	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// ExistsByAccountID reports whether the account already has a driver profile.
	ExistsByAccountID(ctx context.Context, accountID kernel.UUID) (bool, error)

	// FindOnDutySilentSince returns on-duty drivers whose last location report, or
	// registration when they never reported, is older than cutoff.
	FindOnDutySilentSince(ctx context.Context, cutoff time.Time) ([]*driver.Driver, error)
}
