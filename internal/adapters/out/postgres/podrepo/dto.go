// Package podrepo persists proofs of delivery with GORM.
package podrepo

import (
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"

	"github.com/google/uuid"
)

type ProofOfDeliveryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Recipient    string    `gorm:"type:varchar(255);not null"`
	SignatureRef *string   `gorm:"type:varchar(1024)"`
	PhotoRefs    []string  `gorm:"type:jsonb;serializer:json"`
	DeliveredAt  time.Time `gorm:"not null"`
	Lat          *float64
	Lng          *float64
}

func (ProofOfDeliveryDTO) TableName() string {
	return "proofs_of_delivery"
}

func fromDomain(p *pod.ProofOfDelivery) ProofOfDeliveryDTO {
	dto := ProofOfDeliveryDTO{
		ID:           p.ID().Google(),
		JobID:        p.JobID().Google(),
		Recipient:    p.Recipient(),
		SignatureRef: p.SignatureRef(),
		PhotoRefs:    p.PhotoRefs(),
		DeliveredAt:  p.DeliveredAt().UTC(),
	}
	if loc := p.Location(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		dto.Lat = &lat
		dto.Lng = &lng
	}
	return dto
}

func toDomain(dto ProofOfDeliveryDTO) (*pod.ProofOfDelivery, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	jobID, err := kernel.UUIDFromGoogle(dto.JobID)
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Lat != nil && dto.Lng != nil {
		loc, locErr := kernel.NewLocation(*dto.Lat, *dto.Lng)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	return pod.NewProofOfDelivery(id, jobID, dto.Recipient, dto.SignatureRef, dto.PhotoRefs, dto.DeliveredAt.UTC(), location)
}
