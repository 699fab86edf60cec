package geo_test

import (
	"context"
	"fmt"
	"testing"

	"courier/internal/adapters/out/geo"
	"courier/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashGeocoder_Geocode(t *testing.T) {
	g := geo.NewHashGeocoder()

	tests := []struct {
		address string
		lat     float64
		lng     float64
	}{
		{address: "221B Baker Street, London", lat: 51.45483, lng: -0.162},
		{address: "10 Downing Street, London", lat: 51.53067, lng: -0.11744},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			loc, err := g.Geocode(t.Context(), kernel.Address(tt.address))

			require.NoError(t, err)
			assert.InDelta(t, tt.lat, loc.Lat(), 1e-9)
			assert.InDelta(t, tt.lng, loc.Lng(), 1e-9)
		})
	}
}

func TestHashGeocoder_IsPure(t *testing.T) {
	first, err := geo.NewHashGeocoder().Geocode(t.Context(), "Flat 3, 12 Camden High St")
	require.NoError(t, err)
	second, err := geo.NewHashGeocoder().Geocode(t.Context(), "Flat 3, 12 Camden High St")
	require.NoError(t, err)

	equal, err := first.IsEqual(second)
	require.NoError(t, err)
	assert.True(t, equal)
}

func TestHashGeocoder_StaysInsideTheBox(t *testing.T) {
	g := geo.NewHashGeocoder()

	for i := range 500 {
		loc, err := g.Geocode(t.Context(), kernel.Address(fmt.Sprintf("%d Test Road", i)))
		require.NoError(t, err)

		assert.GreaterOrEqual(t, loc.Lat(), geo.DefaultCenterLat-0.05)
		assert.Less(t, loc.Lat(), geo.DefaultCenterLat+0.05)
		assert.GreaterOrEqual(t, loc.Lng(), geo.DefaultCenterLng-0.05)
		assert.Less(t, loc.Lng(), geo.DefaultCenterLng+0.05)
	}
}

func TestHashGeocoder_CustomCenter(t *testing.T) {
	center, err := kernel.NewLocation(40.7128, -74.0060)
	require.NoError(t, err)

	loc, err := geo.NewHashGeocoderAround(center).Geocode(t.Context(), "221B Baker Street, London")

	require.NoError(t, err)
	assert.InDelta(t, 40.7128+(51.45483-geo.DefaultCenterLat), loc.Lat(), 1e-9)
}

func TestHashGeocoder_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := geo.NewHashGeocoder().Geocode(ctx, "anywhere")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestHaversineCalculator_Distance(t *testing.T) {
	calc := geo.NewHaversineCalculator()
	mustLoc := func(lat, lng float64) kernel.Location {
		loc, err := kernel.NewLocation(lat, lng)
		require.NoError(t, err)
		return loc
	}

	tests := []struct {
		name string
		from kernel.Location
		to   kernel.Location
		want float64
	}{
		{name: "same point", from: mustLoc(51.5, -0.12), to: mustLoc(51.5, -0.12), want: 0},
		{name: "0.01 degree north", from: mustLoc(51.5, -0.12), to: mustLoc(51.51, -0.12), want: 1111.949266},
		{name: "0.01 degree east", from: mustLoc(51.5, -0.12), to: mustLoc(51.5, -0.11), want: 692.204693},
		{name: "one degree on the equator", from: mustLoc(0, 0), to: mustLoc(0, 1), want: 111194.926645},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := calc.Distance(tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, d, 1e-3)

			back, err := calc.Distance(tt.to, tt.from)
			require.NoError(t, err)
			assert.InDelta(t, d, back, 1e-9)
		})
	}

	_, err := calc.Distance(kernel.Location{}, mustLoc(0, 0))
	assert.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}
