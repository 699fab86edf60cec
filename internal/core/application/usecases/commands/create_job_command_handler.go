package commands

import (
	"context"
	"fmt"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// MaxTrackingCodeAttempts bounds the draws for an unused tracking code.
const MaxTrackingCodeAttempts = 5

// TrackingCodeSource draws a fresh tracking code. job.GenerateTrackingCode in production.
type TrackingCodeSource func() (job.TrackingCode, error)

// CreateJobCommandHandler registers a new pending job.
//
// The customer must exist. A tracking code is drawn until one is unused, up to
// MaxTrackingCodeAttempts times; the unique index on the column still rejects a code taken
// by a concurrent transaction, which surfaces as a Conflict.
type CreateJobCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	codes      TrackingCodeSource
}

func NewCreateJobCommandHandler(uowFactory UoWFactory, clock ports.Clock, codes TrackingCodeSource) CreateJobCommandHandler {
	if codes == nil {
		codes = job.GenerateTrackingCode
	}
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		codes:      codes,
	}
}

func (h CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) (*job.Job, error) {
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

	customerRepo := uow.CustomerRepository()
	jobRepo := uow.JobRepository()

	exists, err := customerRepo.Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
	}

	code, err := h.unusedTrackingCode(ctx, jobRepo)
	if err != nil {
		return nil, err
	}

	newJob, err := job.NewJob(kernel.NewUUID(), code, cmd.CustomerID(), cmd.Pickup(), cmd.Dropoff(),
		cmd.Price(), cmd.Notes(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = jobRepo.Add(ctx, newJob); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newJob, nil
}

func (h CreateJobCommandHandler) unusedTrackingCode(ctx context.Context, jobRepo ports.JobRepository) (job.TrackingCode, error) {
	for range MaxTrackingCodeAttempts {
		code, err := h.codes()
		if err != nil {
			return "", fmt.Errorf("generate tracking code: %w", err)
		}

		taken, err := jobRepo.TrackingCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}

	return "", errs.NewConflictError("tracking code",
		fmt.Sprintf("no unused tracking code after %d attempts", MaxTrackingCodeAttempts))
}
