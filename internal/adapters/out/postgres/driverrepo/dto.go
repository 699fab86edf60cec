// Package driverrepo persists driver aggregates with GORM.
package driverrepo

import (
	"time"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type DriverDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(50);not null"`
	VehicleInfo    *string   `gorm:"type:varchar(255)"`
	Duty           string    `gorm:"type:varchar(20);not null;index"`
	LastLat        *float64
	LastLng        *float64
	LastLocationAt *time.Time
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:          d.ID().Google(),
		AccountID:   d.AccountID().Google(),
		Name:        d.Name(),
		Phone:       d.Phone(),
		VehicleInfo: d.VehicleInfo(),
		Duty:        d.Duty().String(),
		CreatedAt:   d.CreatedAt().UTC(),
		UpdatedAt:   d.UpdatedAt().UTC(),
	}

	if loc := d.LastLocation(); loc != nil {
		lat, lng := loc.Lat(), loc.Lng()
		dto.LastLat = &lat
		dto.LastLng = &lng
	}
	if at := d.LastLocationAt(); at != nil {
		utc := at.UTC()
		dto.LastLocationAt = &utc
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	accountID, err := kernel.UUIDFromGoogle(dto.AccountID)
	if err != nil {
		return nil, err
	}
	duty, err := driver.ParseDuty(dto.Duty)
	if err != nil {
		return nil, err
	}

	var lastLocation *kernel.Location
	if dto.LastLat != nil && dto.LastLng != nil {
		loc, locErr := kernel.NewLocation(*dto.LastLat, *dto.LastLng)
		if locErr != nil {
			return nil, locErr
		}
		lastLocation = &loc
	}

	var lastLocationAt *time.Time
	if dto.LastLocationAt != nil {
		utc := dto.LastLocationAt.UTC()
		lastLocationAt = &utc
	}

	return driver.RestoreDriver(driver.Snapshot{
		ID:             id,
		AccountID:      accountID,
		Name:           dto.Name,
		Phone:          dto.Phone,
		VehicleInfo:    dto.VehicleInfo,
		Duty:           duty,
		LastLocation:   lastLocation,
		LastLocationAt: lastLocationAt,
		CreatedAt:      dto.CreatedAt.UTC(),
		UpdatedAt:      dto.UpdatedAt.UTC(),
	})
}
