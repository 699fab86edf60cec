package geo

import (
	"errors"
	"math"

	"courier/internal/core/domain/model/kernel"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distances.
const EarthRadiusMeters = 6_371_000.0

// HaversineCalculator measures the great-circle distance between two points.
// It ignores roads, so it underestimates real travel distance.
type HaversineCalculator struct{}

func NewHaversineCalculator() HaversineCalculator {
	return HaversineCalculator{}
}

// Distance returns metres between from and to.
func (HaversineCalculator) Distance(from kernel.Location, to kernel.Location) (float64, error) {
	if err := errors.Join(from.Validate(), to.Validate()); err != nil {
		return 0, err
	}

	lat1 := radians(from.Lat())
	lat2 := radians(to.Lat())
	dLat := lat2 - lat1
	dLng := radians(to.Lng() - from.Lng())

	h := math.Pow(math.Sin(dLat/2), 2) + math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLng/2), 2)
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h)), nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
