package queries

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrGetProofOfDeliveryQueryIsNotConstructed = errors.New(
	"GetProofOfDeliveryQuery must be created via NewGetProofOfDeliveryQuery constructor",
)

type GetProofOfDeliveryQuery struct {
	jobID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetProofOfDeliveryQuery(jobID kernel.UUID) (GetProofOfDeliveryQuery, error) {
	if err := jobID.Validate(); err != nil {
		return GetProofOfDeliveryQuery{}, err
	}
	return GetProofOfDeliveryQuery{
		jobID: jobID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetProofOfDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetProofOfDeliveryQueryIsNotConstructed)
}

func (q GetProofOfDeliveryQuery) JobID() kernel.UUID { return q.jobID }
