// Package pricingrepo persists pricing rules with GORM.
package pricingrepo

import (
	"maps"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

type PricingRuleDTO struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey"`
	Name            string             `gorm:"type:varchar(255);not null;uniqueIndex"`
	BaseRate        float64            `gorm:"type:numeric(10,2);not null"`
	PerDistanceRate float64            `gorm:"type:numeric(10,4);not null"`
	RushSurcharge   float64            `gorm:"type:numeric(10,2);not null"`
	HeavySurcharge  float64            `gorm:"type:numeric(10,2);not null"`
	Zones           map[string]float64 `gorm:"type:jsonb;serializer:json"`
	Active          bool               `gorm:"not null;index"`
	CreatedAt       time.Time          `gorm:"not null"`
}

func (PricingRuleDTO) TableName() string {
	return "pricing_rules"
}

func fromDomain(r *pricing.Rule) PricingRuleDTO {
	rates := r.Rates()
	return PricingRuleDTO{
		ID:              r.ID().Google(),
		Name:            r.Name(),
		BaseRate:        rates.BaseRate,
		PerDistanceRate: rates.PerDistanceRate,
		RushSurcharge:   rates.RushSurcharge,
		HeavySurcharge:  rates.HeavySurcharge,
		Zones:           rates.Zones,
		Active:          r.IsActive(),
		CreatedAt:       r.CreatedAt().UTC(),
	}
}

func toDomain(dto PricingRuleDTO) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	rates := pricing.Rates{
		BaseRate:        dto.BaseRate,
		PerDistanceRate: dto.PerDistanceRate,
		RushSurcharge:   dto.RushSurcharge,
		HeavySurcharge:  dto.HeavySurcharge,
		Zones:           maps.Clone(dto.Zones),
	}
	return pricing.RestoreRule(id, dto.Name, rates, dto.Active, dto.CreatedAt.UTC())
}
