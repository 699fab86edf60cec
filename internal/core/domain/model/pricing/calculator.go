package pricing

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Rates are the monetary inputs of the calculator. All amounts share one currency.
type Rates struct {
	BaseRate        float64
	PerDistanceRate float64
	RushSurcharge   float64
	HeavySurcharge  float64
	// Zones maps a delivery zone name to its multiplier.
	Zones map[string]float64
}

// Request describes the delivery being quoted.
type Request struct {
	Distance float64
	IsRush   bool
	IsHeavy  bool
	Zone     string
}

// Breakdown is the priced result. Money fields are rounded to cents.
type Breakdown struct {
	RuleName       string
	BaseRate       float64
	DistanceCharge float64
	RushSurcharge  float64
	HeavySurcharge float64
	ZoneMultiplier float64
	Total          float64
}

// Compute prices a delivery. The zone multiplier is applied to the unrounded subtotal and
// the total is rounded once at the end. Unknown or empty zones use a multiplier of 1.
//
// Example:
//
//	b := pricing.Compute(pricing.Rates{BaseRate: 5, PerDistanceRate: 2, RushSurcharge: 3,
//	    HeavySurcharge: 4, Zones: map[string]float64{"zone_b": 1.2}},
//	    pricing.Request{Distance: 10, IsRush: true, IsHeavy: true, Zone: "zone_b"})
//	// b.Total == 38.40
func Compute(rates Rates, req Request) Breakdown {
	distanceCharge := req.Distance * rates.PerDistanceRate

	var rush, heavy float64
	if req.IsRush {
		rush = rates.RushSurcharge
	}
	if req.IsHeavy {
		heavy = rates.HeavySurcharge
	}

	multiplier := 1.0
	if m, ok := rates.Zones[req.Zone]; ok && req.Zone != "" {
		multiplier = m
	}

	subtotal := rates.BaseRate + distanceCharge + rush + heavy

	return Breakdown{
		BaseRate:       roundCents(rates.BaseRate),
		DistanceCharge: roundCents(distanceCharge),
		RushSurcharge:  roundCents(rush),
		HeavySurcharge: roundCents(heavy),
		ZoneMultiplier: multiplier,
		Total:          roundCents(subtotal * multiplier),
	}
}

// Text renders the one-line summary shown to dispatchers, for example
// "Base: $5.00 | Distance: $20.00 | Rush: +$3.00 | Heavy: +$4.00 | Zone: ×1.2 | Total: $38.40".
// Zero charges and a neutral zone are left out.
func (b Breakdown) Text() string {
	parts := []string{fmt.Sprintf("Base: $%.2f", b.BaseRate)}
	if b.DistanceCharge > 0 {
		parts = append(parts, fmt.Sprintf("Distance: $%.2f", b.DistanceCharge))
	}
	if b.RushSurcharge > 0 {
		parts = append(parts, fmt.Sprintf("Rush: +$%.2f", b.RushSurcharge))
	}
	if b.HeavySurcharge > 0 {
		parts = append(parts, fmt.Sprintf("Heavy: +$%.2f", b.HeavySurcharge))
	}
	if b.ZoneMultiplier != 1 {
		parts = append(parts, "Zone: ×"+strconv.FormatFloat(b.ZoneMultiplier, 'f', -1, 64))
	}
	parts = append(parts, fmt.Sprintf("Total: $%.2f", b.Total))
	return strings.Join(parts, " | ")
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
