package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrSetPricingRuleActiveCommandIsNotConstructed = errors.New(
	"SetPricingRuleActiveCommand must be created via NewSetPricingRuleActiveCommand constructor",
)

// SetPricingRuleActiveCommand switches a pricing rule on or off. Quotes without an explicit
// rule use the newest active one.
type SetPricingRuleActiveCommand struct { //nolint:recvcheck //using for validation
	ruleID kernel.UUID
	active bool

	guard guard.ConstructorGuard
}

func NewSetPricingRuleActiveCommand(ruleID kernel.UUID, active bool) (SetPricingRuleActiveCommand, error) {
	if err := ruleID.Validate(); err != nil {
		return SetPricingRuleActiveCommand{}, err
	}

	return SetPricingRuleActiveCommand{
		ruleID: ruleID,
		active: active,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c SetPricingRuleActiveCommand) Validate() error {
	return c.guard.Validate(ErrSetPricingRuleActiveCommandIsNotConstructed)
}

func (c SetPricingRuleActiveCommand) RuleID() kernel.UUID { return c.ruleID }
func (c SetPricingRuleActiveCommand) Active() bool        { return c.active }
