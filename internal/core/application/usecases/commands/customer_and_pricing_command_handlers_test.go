package commands_test

import (
	"testing"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCustomerCommandHandler_Handle(t *testing.T) {
	t.Run("stores a lower-cased email", func(t *testing.T) {
		ctx := t.Context()
		f := newUoWFixture(ctx)
		f.customers.On("Add", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once()
		f.expectCommit(ctx)

		cmd := commands.NewRegisterCustomerCommand("Linus", " Linus@Example.COM ", ptr("+46 8 000"))

		c, err := commands.NewRegisterCustomerCommandHandler(f.customerFactory(), fixedClock()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "linus@example.com", c.Email())
		assert.Equal(t, now, c.CreatedAt())
		f.assertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctx := t.Context()
		f := newUoWFixture(ctx)
		f.customers.On("Add", ctx, mock.Anything).
			Return(errs.NewConflictError("customer", "email already registered")).Once()

		cmd := commands.NewRegisterCustomerCommand("Linus", "linus@example.com", nil)

		_, err := commands.NewRegisterCustomerCommandHandler(f.customerFactory(), fixedClock()).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrConflict)
		f.assertExpectations(t)
	})

	t.Run("invalid email never opens a transaction", func(t *testing.T) {
		factory := new(MockCustomerUoWFactory)

		cmd := commands.NewRegisterCustomerCommand("Linus", "not an address", nil)

		_, err := commands.NewRegisterCustomerCommandHandler(factory, fixedClock()).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("zero command", func(t *testing.T) {
		factory := new(MockCustomerUoWFactory)

		_, err := commands.NewRegisterCustomerCommandHandler(factory, fixedClock()).
			Handle(t.Context(), commands.RegisterCustomerCommand{})

		require.ErrorIs(t, err, commands.ErrRegisterCustomerCommandIsNotConstructed)
	})
}

func TestCreatePricingRuleCommandHandler_Handle(t *testing.T) {
	rates := pricing.Rates{
		BaseRate:        5,
		PerDistanceRate: 1.2,
		RushSurcharge:   3,
		HeavySurcharge:  4,
		Zones:           map[string]float64{"central": 1.5},
	}

	t.Run("creates rule", func(t *testing.T) {
		ctx := t.Context()
		f := newUoWFixture(ctx)
		f.rules.On("Add", ctx, mock.AnythingOfType("*pricing.Rule")).Return(nil).Once()
		f.expectCommit(ctx)

		rule, err := commands.NewCreatePricingRuleCommandHandler(f.pricingFactory(), fixedClock()).
			Handle(ctx, commands.NewCreatePricingRuleCommand("standard", rates, true))

		require.NoError(t, err)
		assert.Equal(t, "standard", rule.Name())
		assert.True(t, rule.IsActive())
		assert.InDelta(t, 1.5, rule.Rates().Zones["central"], 1e-9)
		f.assertExpectations(t)
	})

	t.Run("negative rate never opens a transaction", func(t *testing.T) {
		factory := new(MockPricingUoWFactory)
		bad := rates
		bad.BaseRate = -1

		_, err := commands.NewCreatePricingRuleCommandHandler(factory, fixedClock()).
			Handle(t.Context(), commands.NewCreatePricingRuleCommand("standard", bad, true))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		factory.AssertNotCalled(t, "Create")
	})

	t.Run("name taken", func(t *testing.T) {
		ctx := t.Context()
		f := newUoWFixture(ctx)
		f.rules.On("Add", ctx, mock.Anything).Return(errs.NewConflictError("pricing rule", "name already in use")).Once()

		_, err := commands.NewCreatePricingRuleCommandHandler(f.pricingFactory(), fixedClock()).
			Handle(ctx, commands.NewCreatePricingRuleCommand("standard", rates, false))

		require.ErrorIs(t, err, errs.ErrConflict)
		f.assertExpectations(t)
	})
}

func TestSetPricingRuleActiveCommandHandler_Handle(t *testing.T) {
	t.Run("deactivates", func(t *testing.T) {
		ctx := t.Context()
		rule, err := pricing.NewRule(kernel.NewUUID(), "standard", pricing.Rates{BaseRate: 5}, true, createdAt)
		require.NoError(t, err)
		f := newUoWFixture(ctx)
		f.rules.On("Get", ctx, rule.ID()).Return(rule, nil).Once()
		f.rules.On("Update", ctx, rule).Return(nil).Once()
		f.expectCommit(ctx)

		cmd, err := commands.NewSetPricingRuleActiveCommand(rule.ID(), false)
		require.NoError(t, err)

		got, err := commands.NewSetPricingRuleActiveCommandHandler(f.pricingFactory()).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.False(t, got.IsActive())
		f.assertExpectations(t)
	})

	t.Run("unknown rule", func(t *testing.T) {
		ctx := t.Context()
		id := kernel.NewUUID()
		f := newUoWFixture(ctx)
		f.rules.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("pricing rule", id.String())).Once()

		cmd, err := commands.NewSetPricingRuleActiveCommand(id, true)
		require.NoError(t, err)

		_, err = commands.NewSetPricingRuleActiveCommandHandler(f.pricingFactory()).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		f.assertExpectations(t)
	})
}
