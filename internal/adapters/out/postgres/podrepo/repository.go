package podrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormProofOfDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormProofOfDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormProofOfDeliveryRepository {
	return &GormProofOfDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormProofOfDeliveryRepository) Add(ctx context.Context, aggregate *pod.ProofOfDelivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("proof of delivery", "proof of delivery already captured for this job", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormProofOfDeliveryRepository) GetByJobID(ctx context.Context, jobID kernel.UUID) (*pod.ProofOfDelivery, error) {
	if err := jobID.Validate(); err != nil {
		return nil, err
	}

	var dto ProofOfDeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "job_id = ?", jobID.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("proof of delivery", jobID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormProofOfDeliveryRepository) ExistsForJob(ctx context.Context, jobID kernel.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProofOfDeliveryDTO{}).
		Where("job_id = ?", jobID.Google()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
