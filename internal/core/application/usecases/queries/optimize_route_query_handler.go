package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// ErrNoActiveJobs is returned when there is nothing to plan for the driver.
var ErrNoActiveJobs = errs.NewValueIsInvalidErrorWithCause("jobs", errors.New("no active jobs to optimize"))

// OptimizeRouteQueryHandler geocodes the pickup and dropoff of every job and sequences them
// with the route solver, starting from the driver's last reported location when known.
type OptimizeRouteQueryHandler struct {
	readers  ReadersFactory
	geocoder ports.Geocoder
	solver   services.RouteSolver
	clock    ports.Clock
}

func NewOptimizeRouteQueryHandler(
	readers ReadersFactory,
	geocoder ports.Geocoder,
	solver services.RouteSolver,
	clock ports.Clock,
) OptimizeRouteQueryHandler {
	return OptimizeRouteQueryHandler{
		readers:  readers,
		geocoder: geocoder,
		solver:   solver,
		clock:    clock,
	}
}

// Handle returns NotFound for an unknown driver or for requested jobs that are missing or
// not assigned to the driver (all of them listed in one error), and a validation error
// when no job is left to plan or more than services.MaxStops jobs are selected.
func (h OptimizeRouteQueryHandler) Handle(
	ctx context.Context,
	query OptimizeRouteQuery,
) (OptimizeRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OptimizeRouteQueryResponse{}, err
	}

	readers := h.readers.Create()

	d, err := readers.DriverRepository().Get(ctx, query.DriverID())
	if err != nil {
		return OptimizeRouteQueryResponse{}, err
	}

	jobs, err := h.resolveJobs(ctx, readers.JobRepository(), query)
	if err != nil {
		return OptimizeRouteQueryResponse{}, err
	}
	if len(jobs) == 0 {
		return OptimizeRouteQueryResponse{}, ErrNoActiveJobs
	}
	if len(jobs) > services.MaxStops {
		return OptimizeRouteQueryResponse{}, services.ErrTooManyStops
	}

	stops := make([]services.Stop, 0, len(jobs))
	byID := make(map[kernel.UUID]*job.Job, len(jobs))
	for _, j := range jobs {
		pickup, geoErr := h.geocoder.Geocode(ctx, j.Pickup())
		if geoErr != nil {
			return OptimizeRouteQueryResponse{}, fmt.Errorf("geocode pickup of job %s: %w", j.ID(), geoErr)
		}
		dropoff, geoErr := h.geocoder.Geocode(ctx, j.Dropoff())
		if geoErr != nil {
			return OptimizeRouteQueryResponse{}, fmt.Errorf("geocode dropoff of job %s: %w", j.ID(), geoErr)
		}
		stops = append(stops, services.Stop{JobID: j.ID(), Pickup: pickup, Dropoff: dropoff})
		byID[j.ID()] = j
	}

	plan, err := h.solver.Solve(stops, d.LastLocation())
	if err != nil {
		return OptimizeRouteQueryResponse{}, err
	}

	response := OptimizeRouteQueryResponse{
		DriverID:             d.ID(),
		Stops:                make([]RouteStop, 0, len(plan.JobIDs)),
		TotalDistanceMeters:  plan.TotalDistanceMeters,
		TotalDurationSeconds: plan.TotalDurationSeconds,
		Engine:               plan.Engine,
	}
	for i, id := range plan.JobIDs {
		j := byID[id]
		response.Stops = append(response.Stops, RouteStop{
			Sequence:       i + 1,
			JobID:          j.ID(),
			TrackingCode:   j.TrackingCode(),
			PickupAddress:  j.Pickup(),
			DropoffAddress: j.Dropoff(),
			Status:         j.Status(),
		})
	}

	return response, nil
}

// resolveJobs keeps the requested order for explicit ids so ties in the solver break the
// way the caller listed them.
func (h OptimizeRouteQueryHandler) resolveJobs(
	ctx context.Context,
	jobRepo ports.JobRepository,
	query OptimizeRouteQuery,
) ([]*job.Job, error) {
	ids := query.JobIDs()
	if len(ids) == 0 {
		return jobRepo.FindActiveForDriverSince(ctx, query.DriverID(), startOfUTCDay(h.clock.Now()))
	}

	found, err := jobRepo.FindForDriver(ctx, query.DriverID(), ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[kernel.UUID]*job.Job, len(found))
	for _, j := range found {
		byID[j.ID()] = j
	}

	ordered := make([]*job.Job, 0, len(ids))
	var missing []string
	for _, id := range ids {
		j, ok := byID[id]
		if !ok {
			missing = append(missing, id.String())
			continue
		}
		ordered = append(ordered, j)
	}
	if len(missing) > 0 {
		return nil, errs.NewObjectsNotFoundError("job", missing, "not found or not assigned to this driver")
	}

	return ordered, nil
}

func startOfUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
