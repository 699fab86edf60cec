package commands

import (
	"context"

	"courier/internal/core/domain/model/pricing"
)

type SetPricingRuleActiveCommandHandler struct {
	uowFactory PricingUoWFactory
}

func NewSetPricingRuleActiveCommandHandler(uowFactory PricingUoWFactory) SetPricingRuleActiveCommandHandler {
	return SetPricingRuleActiveCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h SetPricingRuleActiveCommandHandler) Handle(ctx context.Context, cmd SetPricingRuleActiveCommand) (*pricing.Rule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ruleRepo := uow.PricingRuleRepository()

	rule, err := ruleRepo.Get(ctx, cmd.RuleID())
	if err != nil {
		return nil, err
	}

	rule.SetActive(cmd.Active())

	if err = ruleRepo.Update(ctx, rule); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return rule, nil
}
