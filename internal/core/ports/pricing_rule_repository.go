package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
)

type PricingRuleRepository interface {
	// Add stores a new rule. A duplicate name is errs.ErrConflict.
	Add(ctx context.Context, aggregate *pricing.Rule) error

	Update(ctx context.Context, aggregate *pricing.Rule) error

	Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error)

	// GetActive returns the most recently created active rule, or errs.ErrObjectNotFound.
	GetActive(ctx context.Context) (*pricing.Rule, error)
}
