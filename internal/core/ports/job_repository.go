// Package ports defines the contracts between the dispatch core and its infrastructure:
// repositories per aggregate, the unit of work, the clock, geocoding, distance and payments.
package ports

import (
	"context"
	"time"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
)

// JobRepository persists job aggregates.
type JobRepository interface {
	// Add stores a new job. A duplicate tracking code is reported as errs.ErrConflict.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update stores the current state of an existing job.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get loads a job by id without locking it.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetForUpdate loads a job and locks its row until the surrounding transaction ends,
	// so concurrent transitions on the same job are serialised.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// TrackingCodeExists reports whether any job already uses code.
	TrackingCodeExists(ctx context.Context, code job.TrackingCode) (bool, error)

	// FindForDriverForUpdate returns the jobs among ids that are assigned to driverID and
	// locks them. Ids that are unknown or belong to another driver are simply absent.
	FindForDriverForUpdate(ctx context.Context, driverID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error)

	// FindForDriver is FindForDriverForUpdate without row locks, for read-only planning.
	FindForDriver(ctx context.Context, driverID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error)

	// FindActiveForDriverSince returns the driver's assigned and picked-up jobs created at or
	// after since, oldest first.
	FindActiveForDriverSince(ctx context.Context, driverID kernel.UUID, since time.Time) ([]*job.Job, error)
}
