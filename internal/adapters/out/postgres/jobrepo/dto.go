// Package jobrepo persists job aggregates with GORM.
package jobrepo

import (
	"time"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the "jobs" table row. Statuses are stored by their wire names so the table is
// readable from SQL and from the tracking query.
type JobDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingCode     string     `gorm:"type:varchar(12);not null;uniqueIndex"`
	Status           string     `gorm:"type:varchar(20);not null;index"`
	CustomerID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress    string     `gorm:"type:varchar(500);not null"`
	DropoffAddress   string     `gorm:"type:varchar(500);not null"`
	Price            *float64   `gorm:"type:numeric(10,2)"`
	PaymentStatus    string     `gorm:"type:varchar(20);not null;default:unpaid"`
	PaymentReference *string    `gorm:"type:varchar(255)"`
	Notes            *string    `gorm:"type:text"`
	RouteSequence    *int
	CreatedAt        time.Time `gorm:"not null;index"`
	UpdatedAt        time.Time `gorm:"not null"`
}

func (JobDTO) TableName() string {
	return "jobs"
}

func fromDomain(j *job.Job) JobDTO {
	var driverID *uuid.UUID
	if id := j.DriverID(); id != nil {
		raw := id.Google()
		driverID = &raw
	}

	return JobDTO{
		ID:               j.ID().Google(),
		TrackingCode:     j.TrackingCode().String(),
		Status:           j.Status().String(),
		CustomerID:       j.CustomerID().Google(),
		DriverID:         driverID,
		PickupAddress:    j.Pickup().String(),
		DropoffAddress:   j.Dropoff().String(),
		Price:            j.Price(),
		PaymentStatus:    j.PaymentStatus().String(),
		PaymentReference: j.PaymentReference(),
		Notes:            j.Notes(),
		RouteSequence:    j.RouteSequence(),
		CreatedAt:        j.CreatedAt().UTC(),
		UpdatedAt:        j.UpdatedAt().UTC(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromGoogle(*dto.DriverID)
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	status, err := job.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := job.ParsePaymentStatus(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(job.Snapshot{
		ID:               id,
		TrackingCode:     job.TrackingCode(dto.TrackingCode),
		Status:           status,
		CustomerID:       customerID,
		DriverID:         driverID,
		Pickup:           kernel.Address(dto.PickupAddress),
		Dropoff:          kernel.Address(dto.DropoffAddress),
		Price:            dto.Price,
		PaymentStatus:    paymentStatus,
		PaymentReference: dto.PaymentReference,
		Notes:            dto.Notes,
		RouteSequence:    dto.RouteSequence,
		CreatedAt:        dto.CreatedAt.UTC(),
		UpdatedAt:        dto.UpdatedAt.UTC(),
	})
}

func toDomainList(dtos []JobDTO) ([]*job.Job, error) {
	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		j, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}
