package commands

import (
	"context"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/ports"
)

// TransitionJobStatusCommandHandler validates the requested status against the lifecycle
// table and stores the result. Illegal moves come back as a Conflict that names the current
// status and the statuses reachable from it.
type TransitionJobStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewTransitionJobStatusCommandHandler(uowFactory UoWFactory, clock ports.Clock) TransitionJobStatusCommandHandler {
	return TransitionJobStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h TransitionJobStatusCommandHandler) Handle(ctx context.Context, cmd TransitionJobStatusCommand) (*job.Job, error) {
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

	j, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}

	if err = j.TransitionTo(cmd.Target(), h.clock.Now()); err != nil {
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
