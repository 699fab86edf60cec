package pricingrepo

import (
	"context"
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPricingRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPricingRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormPricingRuleRepository {
	return &GormPricingRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormPricingRuleRepository) Add(ctx context.Context, aggregate *pricing.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("pricing rule", "name already in use", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPricingRuleRepository) Update(ctx context.Context, aggregate *pricing.Rule) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PricingRuleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pricing rule", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PricingRuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricing rule", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActive returns the most recently created active rule.
func (r *GormPricingRuleRepository) GetActive(ctx context.Context) (*pricing.Rule, error) {
	var dto PricingRuleDTO
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC, id DESC").
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("pricing rule", "active", errors.New("no active pricing rule"))
		}
		return nil, err
	}

	return toDomain(dto)
}
