package pricing_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	zones := map[string]float64{"zone_a": 1.0, "zone_b": 1.2, "zone_c": 1.5}

	tests := []struct {
		name     string
		rates    pricing.Rates
		req      pricing.Request
		total    float64
		distance float64
		zoneMult float64
		wantText string
	}{
		{
			name:     "base only",
			rates:    pricing.Rates{BaseRate: 5},
			req:      pricing.Request{},
			total:    5.00,
			zoneMult: 1,
			wantText: "Base: $5.00 | Total: $5.00",
		},
		{
			name:     "distance charge",
			rates:    pricing.Rates{BaseRate: 5, PerDistanceRate: 2},
			req:      pricing.Request{Distance: 10},
			total:    25.00,
			distance: 20.00,
			zoneMult: 1,
			wantText: "Base: $5.00 | Distance: $20.00 | Total: $25.00",
		},
		{
			name:     "unknown zone defaults to one",
			rates:    pricing.Rates{BaseRate: 5, PerDistanceRate: 2, Zones: zones},
			req:      pricing.Request{Distance: 10, Zone: "zone_z"},
			total:    25.00,
			distance: 20.00,
			zoneMult: 1,
		},
		{
			name: "full combination",
			rates: pricing.Rates{
				BaseRate: 5, PerDistanceRate: 2, RushSurcharge: 3, HeavySurcharge: 4, Zones: zones,
			},
			req:      pricing.Request{Distance: 10, IsRush: true, IsHeavy: true, Zone: "zone_b"},
			total:    38.40,
			distance: 20.00,
			zoneMult: 1.2,
			wantText: "Base: $5.00 | Distance: $20.00 | Rush: +$3.00 | Heavy: +$4.00 | Zone: ×1.2 | Total: $38.40",
		},
		{
			name:     "surcharges ignored when not flagged",
			rates:    pricing.Rates{BaseRate: 5, RushSurcharge: 3, HeavySurcharge: 4},
			req:      pricing.Request{},
			total:    5.00,
			zoneMult: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := pricing.Compute(tt.rates, tt.req)

			assert.InDelta(t, tt.total, b.Total, 1e-9)
			assert.InDelta(t, tt.distance, b.DistanceCharge, 1e-9)
			assert.InDelta(t, tt.zoneMult, b.ZoneMultiplier, 1e-9)
			if tt.wantText != "" {
				assert.Equal(t, tt.wantText, b.Text())
			}
		})
	}
}

func TestCompute_MultipliesUnroundedSubtotal(t *testing.T) {
	b := pricing.Compute(
		pricing.Rates{PerDistanceRate: 0.333, Zones: map[string]float64{"x": 3}},
		pricing.Request{Distance: 1, Zone: "x"},
	)

	assert.InDelta(t, 0.33, b.DistanceCharge, 1e-9)
	assert.InDelta(t, 1.00, b.Total, 1e-9)
}

func TestRule(t *testing.T) {
	now := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("quote carries the rule name", func(t *testing.T) {
		r, err := pricing.NewRule(kernel.NewUUID(), "standard", pricing.Rates{BaseRate: 5, PerDistanceRate: 2}, true, now)
		require.NoError(t, err)

		b, err := r.Quote(pricing.Request{Distance: 10})

		require.NoError(t, err)
		assert.Equal(t, "standard", b.RuleName)
		assert.InDelta(t, 25.0, b.Total, 1e-9)
		assert.True(t, r.IsActive())
	})

	t.Run("negative distance is rejected", func(t *testing.T) {
		r, err := pricing.NewRule(kernel.NewUUID(), "standard", pricing.Rates{BaseRate: 5}, true, now)
		require.NoError(t, err)

		_, err = r.Quote(pricing.Request{Distance: -1})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects negative rates and non-positive multipliers", func(t *testing.T) {
		_, err := pricing.NewRule(kernel.NewUUID(), "", pricing.Rates{
			BaseRate:      -1,
			RushSurcharge: -0.5,
			Zones:         map[string]float64{"zone_a": 0},
		}, false, now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "base_rate")
		assert.Contains(t, err.Error(), "rush_surcharge")
		assert.Contains(t, err.Error(), "zone multiplier")
	})

	t.Run("rates are copied", func(t *testing.T) {
		zones := map[string]float64{"zone_a": 1.5}
		r, err := pricing.NewRule(kernel.NewUUID(), "zoned", pricing.Rates{Zones: zones}, true, now)
		require.NoError(t, err)

		zones["zone_a"] = 9
		got := r.Rates()
		got.Zones["zone_a"] = 7

		assert.InDelta(t, 1.5, r.Rates().Zones["zone_a"], 1e-9)
	})
}
