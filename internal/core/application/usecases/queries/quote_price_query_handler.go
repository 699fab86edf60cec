package queries

import (
	"context"

	"courier/internal/core/domain/model/pricing"
)

type QuotePriceQueryHandler struct {
	readers ReadersFactory
}

func NewQuotePriceQueryHandler(readers ReadersFactory) QuotePriceQueryHandler {
	return QuotePriceQueryHandler{readers: readers}
}

// Handle reports NotFound for an unknown rule id, or when no rule is active.
func (h QuotePriceQueryHandler) Handle(ctx context.Context, query QuotePriceQuery) (pricing.Breakdown, error) {
	if err := query.Validate(); err != nil {
		return pricing.Breakdown{}, err
	}

	rules := h.readers.Create().PricingRuleRepository()

	var (
		rule *pricing.Rule
		err  error
	)
	if id := query.RuleID(); id != nil {
		rule, err = rules.Get(ctx, *id)
	} else {
		rule, err = rules.GetActive(ctx)
	}
	if err != nil {
		return pricing.Breakdown{}, err
	}

	return rule.Quote(query.Request())
}
