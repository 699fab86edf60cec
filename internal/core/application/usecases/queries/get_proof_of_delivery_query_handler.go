package queries

import (
	"context"

	"courier/internal/core/domain/model/pod"
)

// GetProofOfDeliveryQueryHandler distinguishes an unknown job from a job that has no proof
// yet; both are NotFound, with the subject named.
type GetProofOfDeliveryQueryHandler struct {
	readers ReadersFactory
}

func NewGetProofOfDeliveryQueryHandler(readers ReadersFactory) GetProofOfDeliveryQueryHandler {
	return GetProofOfDeliveryQueryHandler{readers: readers}
}

func (h GetProofOfDeliveryQueryHandler) Handle(ctx context.Context, query GetProofOfDeliveryQuery) (*pod.ProofOfDelivery, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	readers := h.readers.Create()

	if _, err := readers.JobRepository().Get(ctx, query.JobID()); err != nil {
		return nil, err
	}

	return readers.ProofOfDeliveryRepository().GetByJobID(ctx, query.JobID())
}
