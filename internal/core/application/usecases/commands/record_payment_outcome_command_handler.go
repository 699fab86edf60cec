package commands

import (
	"context"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/ports"
)

// RecordPaymentOutcomeCommandHandler applies a webhook verdict. A failure reported for an
// already paid job is a Conflict; repeating a failure is accepted.
type RecordPaymentOutcomeCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewRecordPaymentOutcomeCommandHandler(uowFactory UoWFactory, clock ports.Clock) RecordPaymentOutcomeCommandHandler {
	return RecordPaymentOutcomeCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RecordPaymentOutcomeCommandHandler) Handle(ctx context.Context, cmd RecordPaymentOutcomeCommand) (*job.Job, error) {
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

	now := h.clock.Now()
	if cmd.Succeeded() {
		err = j.MarkPaid(cmd.Reference(), now)
	} else {
		err = j.MarkPaymentFailed(now)
	}
	if err != nil {
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
