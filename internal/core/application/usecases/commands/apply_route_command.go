package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrApplyRouteCommandIsNotConstructed = errors.New(
	"ApplyRouteCommand must be created via NewApplyRouteCommand constructor",
)

// RouteAssignment places one job at a position on the driver's route.
type RouteAssignment struct {
	JobID    kernel.UUID
	Sequence int
}

// ApplyRouteCommand stores a sequence chosen by the dispatcher, usually the output of
// route optimisation. Duplicate or gapped sequence numbers are accepted as given.
type ApplyRouteCommand struct { //nolint:recvcheck //using for validation
	driverID    kernel.UUID
	assignments []RouteAssignment

	guard guard.ConstructorGuard
}

func NewApplyRouteCommand(driverID kernel.UUID, assignments []RouteAssignment) (ApplyRouteCommand, error) {
	if err := driverID.Validate(); err != nil {
		return ApplyRouteCommand{}, err
	}
	if len(assignments) == 0 {
		return ApplyRouteCommand{}, errs.NewValueIsRequiredError("sequence")
	}

	var errList []error
	for _, a := range assignments {
		if err := a.JobID.Validate(); err != nil {
			errList = append(errList, err)
		}
		if a.Sequence < 1 {
			errList = append(errList, errs.NewValueIsOutOfRangeError("sequence", a.Sequence, 1, "unbounded"))
		}
	}
	if err := errors.Join(errList...); err != nil {
		return ApplyRouteCommand{}, err
	}

	return ApplyRouteCommand{
		driverID:    driverID,
		assignments: append([]RouteAssignment(nil), assignments...),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ApplyRouteCommand) Validate() error {
	return c.guard.Validate(ErrApplyRouteCommandIsNotConstructed)
}

func (c ApplyRouteCommand) DriverID() kernel.UUID { return c.driverID }

func (c ApplyRouteCommand) Assignments() []RouteAssignment {
	return append([]RouteAssignment(nil), c.assignments...)
}

// JobIDs lists the job ids in request order, without duplicates.
func (c ApplyRouteCommand) JobIDs() []kernel.UUID {
	seen := make(map[kernel.UUID]struct{}, len(c.assignments))
	ids := make([]kernel.UUID, 0, len(c.assignments))
	for _, a := range c.assignments {
		if _, ok := seen[a.JobID]; ok {
			continue
		}
		seen[a.JobID] = struct{}{}
		ids = append(ids, a.JobID)
	}
	return ids
}
