package commands

import (
	"context"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/ports"
)

// AssignDriverCommandHandler moves a job from pending to assigned and records its driver.
//
// The job row is locked first so that two dispatchers assigning the same job serialise:
// the second one sees the job already assigned and gets a Conflict. The transition is
// checked before the driver lookup, so re-assigning reports the Conflict even for an
// unknown driver.
//
// Example:
//
//	cmd, _ := NewAssignDriverCommand(jobID, driverID)
//	j, err := handler.Handle(ctx, cmd)
//	switch {
//	case errs.IsConflict(err):
//	    // job is no longer pending
//	case errs.IsNotFound(err):
//	    // job or driver does not exist
//	}
type AssignDriverCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewAssignDriverCommandHandler(uowFactory UoWFactory, clock ports.Clock) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) (*job.Job, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	driverRepo := uow.DriverRepository()

	j, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}
	if err = j.CheckAssignable(); err != nil {
		return nil, err
	}

	if _, err = driverRepo.Get(ctx, cmd.DriverID()); err != nil {
		return nil, err
	}

	if err = j.AssignDriver(cmd.DriverID(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return j, nil
}
