package queries

import (
	"errors"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrOptimizeRouteQueryIsNotConstructed = errors.New(
	"OptimizeRouteQuery must be created via NewOptimizeRouteQuery constructor",
)

// OptimizeRouteQuery asks for a visiting order of a driver's jobs. Without job ids the
// driver's active jobs created since the start of the current UTC day are planned.
//
// Example:
//
//	query, err := NewOptimizeRouteQuery(driverID, nil)
//	if err != nil {
//	    return err
//	}
//	plan, err := handler.Handle(ctx, query)
type OptimizeRouteQuery struct {
	driverID kernel.UUID
	jobIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

// NewOptimizeRouteQuery validates the ids and drops repeated job ids, keeping the first
// occurrence.
func NewOptimizeRouteQuery(driverID kernel.UUID, jobIDs []kernel.UUID) (OptimizeRouteQuery, error) {
	errList := []error{driverID.Validate()}

	seen := make(map[kernel.UUID]struct{}, len(jobIDs))
	unique := make([]kernel.UUID, 0, len(jobIDs))
	for _, id := range jobIDs {
		if err := id.Validate(); err != nil {
			errList = append(errList, err)
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	if err := errors.Join(errList...); err != nil {
		return OptimizeRouteQuery{}, err
	}

	return OptimizeRouteQuery{
		driverID: driverID,
		jobIDs:   unique,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q OptimizeRouteQuery) Validate() error {
	return q.guard.Validate(ErrOptimizeRouteQueryIsNotConstructed)
}

func (q OptimizeRouteQuery) DriverID() kernel.UUID { return q.driverID }

// JobIDs returns the requested ids; empty means "the driver's active jobs of today".
func (q OptimizeRouteQuery) JobIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), q.jobIDs...)
}

// RouteStop is one job of an optimised route, numbered from 1.
type RouteStop struct {
	Sequence       int
	JobID          kernel.UUID
	TrackingCode   job.TrackingCode
	PickupAddress  kernel.Address
	DropoffAddress kernel.Address
	Status         job.Status
}

// OptimizeRouteQueryResponse is a proposal only; nothing is stored until the route is
// applied.
type OptimizeRouteQueryResponse struct {
	DriverID             kernel.UUID
	Stops                []RouteStop
	TotalDistanceMeters  float64
	TotalDurationSeconds float64
	Engine               string
}
