package pricing

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrRuleIsNotConstructed = errors.New("pricing rule must be created via NewRule or RestoreRule")

// Rule is a named rate card. Quotes without an explicit rule use the active one.
type Rule struct {
	id        kernel.UUID
	name      string
	rates     Rates
	active    bool
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewRule validates a rate card: rates must be non-negative and zone multipliers positive.
func NewRule(id kernel.UUID, name string, rates Rates, active bool, now time.Time) (*Rule, error) {
	return RestoreRule(id, name, rates, active, now)
}

func RestoreRule(id kernel.UUID, name string, rates Rates, active bool, createdAt time.Time) (*Rule, error) {
	r := &Rule{
		active:    active,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setRates(rates),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Rule) Validate() error {
	if r == nil {
		return ErrRuleIsNotConstructed
	}
	return r.guard.Validate(ErrRuleIsNotConstructed)
}

func (r *Rule) ID() kernel.UUID      { return r.id }
func (r *Rule) Name() string         { return r.name }
func (r *Rule) IsActive() bool       { return r.active }
func (r *Rule) CreatedAt() time.Time { return r.createdAt }

// Rates returns a copy of the rate card.
func (r *Rule) Rates() Rates {
	rates := r.rates
	rates.Zones = maps.Clone(r.rates.Zones)
	return rates
}

// SetActive flags the rule for default quoting or withdraws it.
func (r *Rule) SetActive(active bool) {
	r.active = active
}

// Quote prices req with this rule.
func (r *Rule) Quote(req Request) (Breakdown, error) {
	if math.IsNaN(req.Distance) || req.Distance < 0 {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%v is not a non-negative distance", req.Distance))
	}

	b := Compute(r.rates, req)
	b.RuleName = r.name
	return b, nil
}

func (r *Rule) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rule) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}

func (r *Rule) setRates(rates Rates) error {
	var errList []error
	for param, v := range map[string]float64{
		"base_rate":         rates.BaseRate,
		"per_distance_rate": rates.PerDistanceRate,
		"rush_surcharge":    rates.RushSurcharge,
		"heavy_surcharge":   rates.HeavySurcharge,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(param,
				fmt.Errorf("%v is negative", v)))
		}
	}
	for zone, m := range rates.Zones {
		if strings.TrimSpace(zone) == "" {
			errList = append(errList, errs.NewValueIsRequiredError("zone name"))
		}
		if math.IsNaN(m) || math.IsInf(m, 0) || m <= 0 {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("zone multiplier",
				fmt.Errorf("%q has multiplier %v, must be greater than 0", zone, m)))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	r.rates = rates
	r.rates.Zones = maps.Clone(rates.Zones)
	return nil
}
