package queries

import (
	"context"
	"time"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTrackingInfoQueryHandler reads the tracking view straight from the tables: the job,
// its driver summary and the delivery time from the proof of delivery.
type GetTrackingInfoQueryHandler struct {
	db *gorm.DB
}

func NewGetTrackingInfoQueryHandler(db *gorm.DB) GetTrackingInfoQueryHandler {
	return GetTrackingInfoQueryHandler{db: db}
}

type trackingRow struct {
	TrackingCode   string
	Status         string
	PickupAddress  string
	DropoffAddress string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeliveredAt    *time.Time
	DriverID       *uuid.UUID
	DriverName     *string
	LastLat        *float64
	LastLng        *float64
	LastLocationAt *time.Time
}

func (h GetTrackingInfoQueryHandler) Handle(
	ctx context.Context,
	query GetTrackingInfoQuery,
) (GetTrackingInfoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTrackingInfoQueryResponse{}, err
	}

	var row trackingRow
	result := h.db.WithContext(ctx).Raw(`
		SELECT
			j.tracking_code,
			j.status,
			j.pickup_address,
			j.dropoff_address,
			j.created_at,
			j.updated_at,
			p.delivered_at,
			d.id AS driver_id,
			d.name AS driver_name,
			d.last_lat,
			d.last_lng,
			d.last_location_at
		FROM jobs j
		LEFT JOIN drivers d ON d.id = j.driver_id
		LEFT JOIN proofs_of_delivery p ON p.job_id = j.id
		WHERE j.tracking_code = ?
	`, query.TrackingCode()).Scan(&row)
	if result.Error != nil {
		return GetTrackingInfoQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetTrackingInfoQueryResponse{}, errs.NewObjectNotFoundError("tracking code", query.TrackingCode())
	}

	status, err := job.ParseStatus(row.Status)
	if err != nil {
		return GetTrackingInfoQueryResponse{}, err
	}

	response := GetTrackingInfoQueryResponse{
		TrackingCode:   row.TrackingCode,
		Status:         status,
		PickupAddress:  row.PickupAddress,
		DropoffAddress: row.DropoffAddress,
		CreatedAt:      row.CreatedAt.UTC(),
		UpdatedAt:      row.UpdatedAt.UTC(),
		DeliveredAt:    utcPtr(row.DeliveredAt),
	}

	if row.DriverID != nil {
		driverID, idErr := kernel.UUIDFromGoogle(*row.DriverID)
		if idErr != nil {
			return GetTrackingInfoQueryResponse{}, idErr
		}
		summary := &TrackingDriver{
			ID:             driverID,
			LastLocationAt: utcPtr(row.LastLocationAt),
		}
		if row.DriverName != nil {
			summary.Name = *row.DriverName
		}
		if row.LastLat != nil && row.LastLng != nil {
			loc, locErr := kernel.NewLocation(*row.LastLat, *row.LastLng)
			if locErr != nil {
				return GetTrackingInfoQueryResponse{}, locErr
			}
			summary.LastLocation = &loc
		}
		response.Driver = summary
	}

	return response, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
