package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"
)

type ProofOfDeliveryRepository interface {
	// Add stores a proof. A second proof for the same job is errs.ErrConflict.
	Add(ctx context.Context, aggregate *pod.ProofOfDelivery) error

	// GetByJobID returns the proof captured for jobID, or errs.ErrObjectNotFound.
	GetByJobID(ctx context.Context, jobID kernel.UUID) (*pod.ProofOfDelivery, error)

	ExistsForJob(ctx context.Context, jobID kernel.UUID) (bool, error)
}
