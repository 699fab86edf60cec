package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"

	"github.com/labstack/echo/v4"
)

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req NewCustomerRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	registered, err := s.h.RegisterCustomer.Handle(ctx.Request().Context(),
		commands.NewRegisterCustomerCommand(req.Name, req.Email, req.Phone))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, customerResponse(registered))
}

// CreatePricingRule handles POST /api/v1/pricing/rules.
func (s *Server) CreatePricingRule(ctx echo.Context) error {
	var req NewPricingRuleRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	rates := pricing.Rates{
		BaseRate:        req.BaseRate,
		PerDistanceRate: req.PerDistanceRate,
		RushSurcharge:   req.RushSurcharge,
		HeavySurcharge:  req.HeavySurcharge,
		Zones:           req.Zones,
	}

	created, err := s.h.CreatePricingRule.Handle(ctx.Request().Context(),
		commands.NewCreatePricingRuleCommand(req.Name, rates, req.IsActive))
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, pricingRuleResponse(created))
}

// SetPricingRuleActive handles PUT /api/v1/pricing/rules/{rule_id}/active.
func (s *Server) SetPricingRuleActive(ctx echo.Context) error {
	ruleID, err := bindUUIDPathParam(ctx, "rule_id")
	if err != nil {
		return err
	}

	var req RuleActivationRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewSetPricingRuleActiveCommand(ruleID, req.IsActive)
	if err != nil {
		return err
	}

	updated, err := s.h.SetPricingRuleActive.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pricingRuleResponse(updated))
}

// QuotePrice handles POST /api/v1/pricing/quote.
func (s *Server) QuotePrice(ctx echo.Context) error {
	var req QuoteRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	var ruleID *kernel.UUID
	if req.RuleID != nil {
		id, err := kernel.UUIDFromGoogle(*req.RuleID)
		if err != nil {
			return err
		}
		ruleID = &id
	}
	zone := ""
	if req.Zone != nil {
		zone = *req.Zone
	}

	query, err := queries.NewQuotePriceQuery(ruleID, req.Distance, req.IsRush, req.IsHeavy, zone)
	if err != nil {
		return err
	}

	breakdown, err := s.h.QuotePrice.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, quoteResponse(breakdown))
}
