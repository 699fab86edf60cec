package queries

import (
	"context"

	"courier/internal/core/domain/model/job"
)

type GetJobQueryHandler struct {
	readers ReadersFactory
}

func NewGetJobQueryHandler(readers ReadersFactory) GetJobQueryHandler {
	return GetJobQueryHandler{readers: readers}
}

func (h GetJobQueryHandler) Handle(ctx context.Context, query GetJobQuery) (*job.Job, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.readers.Create().JobRepository().Get(ctx, query.JobID())
}
