package commands

import (
	"context"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/ports"
)

// UpdateJobFieldsCommandHandler applies field edits. Edits are accepted in every status,
// delivered and failed jobs included.
type UpdateJobFieldsCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewUpdateJobFieldsCommandHandler(uowFactory UoWFactory, clock ports.Clock) UpdateJobFieldsCommandHandler {
	return UpdateJobFieldsCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateJobFieldsCommandHandler) Handle(ctx context.Context, cmd UpdateJobFieldsCommand) (*job.Job, error) {
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

	if err = j.UpdateFields(cmd.Update(), h.clock.Now()); err != nil {
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
