package commands

import (
	"errors"
	"maps"

	"courier/internal/core/domain/model/pricing"
	"courier/internal/pkg/guard"
)

var ErrCreatePricingRuleCommandIsNotConstructed = errors.New(
	"CreatePricingRuleCommand must be created via NewCreatePricingRuleCommand constructor",
)

// CreatePricingRuleCommand defines a named set of rates.
type CreatePricingRuleCommand struct { //nolint:recvcheck //using for validation
	name   string
	rates  pricing.Rates
	active bool

	guard guard.ConstructorGuard
}

func NewCreatePricingRuleCommand(name string, rates pricing.Rates, active bool) CreatePricingRuleCommand {
	rates.Zones = maps.Clone(rates.Zones)
	return CreatePricingRuleCommand{
		name:   name,
		rates:  rates,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}
}

func (c CreatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingRuleCommandIsNotConstructed)
}

func (c CreatePricingRuleCommand) Name() string         { return c.name }
func (c CreatePricingRuleCommand) Rates() pricing.Rates { return c.rates }
func (c CreatePricingRuleCommand) Active() bool         { return c.active }
