package queries

import (
	"errors"
	"strings"
	"time"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrGetTrackingInfoQueryIsNotConstructed = errors.New(
	"GetTrackingInfoQuery must be created via NewGetTrackingInfoQuery constructor",
)

// GetTrackingInfoQuery is the public, unauthenticated lookup of a job by its tracking code.
type GetTrackingInfoQuery struct {
	trackingCode string

	guard guard.ConstructorGuard
}

func NewGetTrackingInfoQuery(trackingCode string) (GetTrackingInfoQuery, error) {
	trackingCode = strings.TrimSpace(trackingCode)
	if trackingCode == "" {
		return GetTrackingInfoQuery{}, errs.NewValueIsRequiredError("tracking_code")
	}
	return GetTrackingInfoQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q GetTrackingInfoQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackingInfoQueryIsNotConstructed)
}

func (q GetTrackingInfoQuery) TrackingCode() string { return q.trackingCode }

// TrackingDriver is the part of the driver profile shown to the public.
type TrackingDriver struct {
	ID             kernel.UUID
	Name           string
	LastLocation   *kernel.Location
	LastLocationAt *time.Time
}

// GetTrackingInfoQueryResponse carries no customer, price or payment data.
type GetTrackingInfoQueryResponse struct {
	TrackingCode   string
	Status         job.Status
	PickupAddress  string
	DropoffAddress string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeliveredAt    *time.Time
	Driver         *TrackingDriver
}
