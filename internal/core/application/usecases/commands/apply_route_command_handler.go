package commands

import (
	"context"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// ApplyRouteCommandHandler writes route sequence numbers onto a driver's jobs.
//
// The update is all or nothing: when any requested job is unknown or belongs to another
// driver, a single NotFound lists every such id and no job changes. The handler returns the
// number of assignments applied, which counts repeated job ids once per entry.
type ApplyRouteCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewApplyRouteCommandHandler(uowFactory UoWFactory, clock ports.Clock) ApplyRouteCommandHandler {
	return ApplyRouteCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ApplyRouteCommandHandler) Handle(ctx context.Context, cmd ApplyRouteCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	jobRepo := uow.JobRepository()

	if _, err := driverRepo.Get(ctx, cmd.DriverID()); err != nil {
		return 0, err
	}

	ids := cmd.JobIDs()
	jobs, err := jobRepo.FindForDriverForUpdate(ctx, cmd.DriverID(), ids)
	if err != nil {
		return 0, err
	}

	byID := make(map[kernel.UUID]*job.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID()] = j
	}
	if missing := missingJobIDs(ids, byID); len(missing) > 0 {
		return 0, errs.NewObjectsNotFoundError("job", missing, "not found or not assigned to this driver")
	}

	now := h.clock.Now()
	assignments := cmd.Assignments()
	for _, a := range assignments {
		if err = byID[a.JobID].SetRouteSequence(a.Sequence, now); err != nil {
			return 0, err
		}
	}

	for _, id := range ids {
		if err = jobRepo.Update(ctx, byID[id]); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(assignments), nil
}

// missingJobIDs returns the requested ids absent from found, in request order.
func missingJobIDs(ids []kernel.UUID, found map[kernel.UUID]*job.Job) []string {
	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id.String())
		}
	}
	return missing
}
