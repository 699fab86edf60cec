package jobrepo

import (
	"context"
	"errors"
	"time"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormJobRepository implements ports.JobRepository.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("job", "tracking code already in use", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column, so clearing an optional field persists NULL.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&JobDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "tracking_code", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("job", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, r.db, id)
}

// GetForUpdate adds SELECT ... FOR UPDATE. Dialects without row locks ignore the clause.
func (r *GormJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	return r.get(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

func (r *GormJobRepository) get(ctx context.Context, db *gorm.DB, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormJobRepository) TrackingCodeExists(ctx context.Context, code job.TrackingCode) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&JobDTO{}).
		Where("tracking_code = ?", code.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormJobRepository) FindForDriverForUpdate(
	ctx context.Context,
	driverID kernel.UUID,
	ids []kernel.UUID,
) ([]*job.Job, error) {
	return r.findForDriver(ctx, r.db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), driverID, ids)
}

func (r *GormJobRepository) FindForDriver(ctx context.Context, driverID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error) {
	return r.findForDriver(ctx, r.db, driverID, ids)
}

func (r *GormJobRepository) findForDriver(
	ctx context.Context,
	db *gorm.DB,
	driverID kernel.UUID,
	ids []kernel.UUID,
) ([]*job.Job, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*job.Job{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Google())
	}

	var dtos []JobDTO
	if err := db.WithContext(ctx).
		Where("driver_id = ? AND id IN ?", driverID.Google(), raw).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormJobRepository) FindActiveForDriverSince(
	ctx context.Context,
	driverID kernel.UUID,
	since time.Time,
) ([]*job.Job, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []JobDTO
	if err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status IN ? AND created_at >= ?",
			driverID.Google(),
			[]string{job.Assigned.String(), job.PickedUp.String()},
			since.UTC()).
		Order("created_at, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}
