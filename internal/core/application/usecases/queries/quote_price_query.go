package queries

import (
	"errors"
	"math"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrQuotePriceQueryIsNotConstructed = errors.New(
	"QuotePriceQuery must be created via NewQuotePriceQuery constructor",
)

// QuotePriceQuery prices a delivery with a named rule, or with the active rule when
// ruleID is nil.
type QuotePriceQuery struct {
	ruleID  *kernel.UUID
	request pricing.Request

	guard guard.ConstructorGuard
}

func NewQuotePriceQuery(ruleID *kernel.UUID, distance float64, isRush bool, isHeavy bool, zone string) (QuotePriceQuery, error) {
	var errList []error
	if ruleID != nil {
		errList = append(errList, ruleID.Validate())
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("distance", distance, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return QuotePriceQuery{}, err
	}

	return QuotePriceQuery{
		ruleID: ruleID,
		request: pricing.Request{
			Distance: distance,
			IsRush:   isRush,
			IsHeavy:  isHeavy,
			Zone:     zone,
		},
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q QuotePriceQuery) Validate() error {
	return q.guard.Validate(ErrQuotePriceQueryIsNotConstructed)
}

func (q QuotePriceQuery) RuleID() *kernel.UUID     { return q.ruleID }
func (q QuotePriceQuery) Request() pricing.Request { return q.request }
