package commands

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// CaptureProofOfDeliveryCommandHandler stores the one proof of delivery a job may have.
// The job row is locked so two captures for the same job cannot both pass the existence
// check; the unique index on job_id backs this up.
type CaptureProofOfDeliveryCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewCaptureProofOfDeliveryCommandHandler(uowFactory UoWFactory, clock ports.Clock) CaptureProofOfDeliveryCommandHandler {
	return CaptureProofOfDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CaptureProofOfDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd CaptureProofOfDeliveryCommand,
) (*pod.ProofOfDelivery, error) {
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
	proofRepo := uow.ProofOfDeliveryRepository()

	if _, err := jobRepo.GetForUpdate(ctx, cmd.JobID()); err != nil {
		return nil, err
	}

	exists, err := proofRepo.ExistsForJob(ctx, cmd.JobID())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.NewConflictError("proof of delivery", "proof of delivery already captured for this job")
	}

	proof, err := pod.NewProofOfDelivery(kernel.NewUUID(), cmd.JobID(), cmd.Recipient(), cmd.SignatureRef(),
		cmd.PhotoRefs(), h.clock.Now(), cmd.Location())
	if err != nil {
		return nil, err
	}

	if err = proofRepo.Add(ctx, proof); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return proof, nil
}
