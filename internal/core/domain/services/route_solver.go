package services

import (
	"errors"
	"fmt"
	"math"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

const (
	// MaxStops caps a single optimisation request.
	MaxStops = 25

	// AverageSpeedMetersPerSecond is the assumed city cycling speed (about 30 km/h).
	AverageSpeedMetersPerSecond = 8.33

	// EngineName identifies the heuristic in route plans.
	EngineName = "haversine_nearest_neighbor"
)

// ErrTooManyStops is returned before any distance is computed when more than MaxStops
// stops are submitted.
var ErrTooManyStops = errs.NewValueIsInvalidErrorWithCause("stops",
	fmt.Errorf("too many stops: at most %d are supported", MaxStops))

// Stop is one job on a driver's route: collect at Pickup, then hand over at Dropoff.
type Stop struct {
	JobID   kernel.UUID
	Pickup  kernel.Location
	Dropoff kernel.Location
}

// RoutePlan is the solver's result. Distances are metres and durations seconds, both
// rounded to one decimal.
type RoutePlan struct {
	JobIDs               []kernel.UUID
	TotalDistanceMeters  float64
	TotalDurationSeconds float64
	Engine               string
}

// RouteSolver orders a single driver's stops with the greedy nearest-neighbour heuristic.
//
// Algorithm:
//   - start at origin, or at the first stop's pickup when origin is nil
//   - pick the unvisited stop whose pickup is closest to the current position;
//     on equal distances the stop that came first in the input wins
//   - travel to its pickup, then straight to its dropoff
//   - continue from that dropoff until every stop is visited
//
// The solver is stateless and safe for concurrent use. It never calls the job state
// machine; callers turn the plan into sequence numbers.
//
// Example:
//
//	solver := services.NewRouteSolver(geo.NewHaversineCalculator())
//	plan, err := solver.Solve(stops, &driverPosition)
//	if err != nil {
//	    return err
//	}
//	for i, id := range plan.JobIDs {
//	    fmt.Printf("%d: %s\n", i+1, id)
//	}
type RouteSolver struct {
	distance ports.DistanceCalculator
}

func NewRouteSolver(distance ports.DistanceCalculator) RouteSolver {
	return RouteSolver{
		distance: distance,
	}
}

// Solve sequences stops.
//
// Parameters:
//   - stops: at most MaxStops stops, each with constructed coordinates
//   - origin: optional starting position, usually the driver's last known location
//
// Returns:
//   - RoutePlan: visiting order and totals; an empty input yields an empty plan with zero totals
//   - error: ErrTooManyStops, a coordinate validation error, or a distance calculator failure
func (s RouteSolver) Solve(stops []Stop, origin *kernel.Location) (RoutePlan, error) {
	if len(stops) > MaxStops {
		return RoutePlan{}, ErrTooManyStops
	}
	if s.distance == nil {
		return RoutePlan{}, errors.New("route solver has no distance calculator")
	}

	plan := RoutePlan{
		JobIDs: make([]kernel.UUID, 0, len(stops)),
		Engine: EngineName,
	}
	if len(stops) == 0 {
		return plan, nil
	}

	for i, stop := range stops {
		if err := errors.Join(stop.JobID.Validate(), stop.Pickup.Validate(), stop.Dropoff.Validate()); err != nil {
			return RoutePlan{}, fmt.Errorf("stop %d: %w", i, err)
		}
	}

	current := stops[0].Pickup
	if origin != nil {
		if err := origin.Validate(); err != nil {
			return RoutePlan{}, fmt.Errorf("origin: %w", err)
		}
		current = *origin
	}

	visited := make([]bool, len(stops))
	var total float64

	for range stops {
		best := -1
		bestDistance := math.Inf(1)
		for i, stop := range stops {
			if visited[i] {
				continue
			}
			d, err := s.distance.Distance(current, stop.Pickup)
			if err != nil {
				return RoutePlan{}, err
			}
			if d < bestDistance {
				best = i
				bestDistance = d
			}
		}
		if best < 0 {
			return RoutePlan{}, errors.New("route solver could not select the next stop")
		}

		leg, err := s.distance.Distance(stops[best].Pickup, stops[best].Dropoff)
		if err != nil {
			return RoutePlan{}, err
		}

		total += bestDistance + leg
		visited[best] = true
		plan.JobIDs = append(plan.JobIDs, stops[best].JobID)
		current = stops[best].Dropoff
	}

	plan.TotalDistanceMeters = roundTenth(total)
	plan.TotalDurationSeconds = roundTenth(total / AverageSpeedMetersPerSecond)
	return plan, nil
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
