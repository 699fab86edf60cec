package commands

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/ports"
)

type CreatePricingRuleCommandHandler struct {
	uowFactory PricingUoWFactory
	clock      ports.Clock
}

func NewCreatePricingRuleCommandHandler(uowFactory PricingUoWFactory, clock ports.Clock) CreatePricingRuleCommandHandler {
	return CreatePricingRuleCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CreatePricingRuleCommandHandler) Handle(ctx context.Context, cmd CreatePricingRuleCommand) (*pricing.Rule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rule, err := pricing.NewRule(kernel.NewUUID(), cmd.Name(), cmd.Rates(), cmd.Active(), h.clock.Now())
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

	if err = uow.PricingRuleRepository().Add(ctx, rule); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rule, nil
}
