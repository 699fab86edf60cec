package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
)

// Geocoder resolves a street address to a coordinate. The default adapter derives the
// coordinate from a hash of the text; a real geocoding service can replace it.
type Geocoder interface {
	Geocode(ctx context.Context, address kernel.Address) (kernel.Location, error)
}

// DistanceCalculator returns the travel distance in metres between two coordinates.
// The default adapter uses the great-circle distance; a road router can replace it.
type DistanceCalculator interface {
	Distance(from kernel.Location, to kernel.Location) (float64, error)
}
