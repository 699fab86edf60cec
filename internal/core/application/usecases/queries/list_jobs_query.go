package queries

import (
	"errors"
	"time"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
)

var ErrListJobsQueryIsNotConstructed = errors.New(
	"ListJobsQuery must be created via NewListJobsQuery constructor",
)

// ListJobsFilter narrows the listing. Nil fields do not filter; both bounds are inclusive.
type ListJobsFilter struct {
	Status        *job.Status
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// ListJobsQuery pages through jobs newest first.
//
// Example:
//
//	assigned := job.Assigned
//	query, err := NewListJobsQuery(ListJobsFilter{Status: &assigned}, 0, DefaultListLimit)
type ListJobsQuery struct {
	filter ListJobsFilter
	skip   int
	limit  int

	guard guard.ConstructorGuard
}

func NewListJobsQuery(filter ListJobsFilter, skip int, limit int) (ListJobsQuery, error) {
	var errList []error
	if filter.Status != nil {
		errList = append(errList, filter.Status.Validate())
	}
	if skip < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("skip", skip, 0, "unbounded"))
	}
	if limit < 1 || limit > MaxListLimit {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListLimit))
	}
	if err := errors.Join(errList...); err != nil {
		return ListJobsQuery{}, err
	}

	return ListJobsQuery{
		filter: filter,
		skip:   skip,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListJobsQuery) Validate() error {
	return q.guard.Validate(ErrListJobsQueryIsNotConstructed)
}

func (q ListJobsQuery) Filter() ListJobsFilter { return q.filter }
func (q ListJobsQuery) Skip() int              { return q.skip }
func (q ListJobsQuery) Limit() int             { return q.limit }

// JobSummary is one row of the job listing.
type JobSummary struct {
	ID             kernel.UUID
	TrackingCode   string
	Status         job.Status
	CustomerID     kernel.UUID
	DriverID       *kernel.UUID
	PickupAddress  string
	DropoffAddress string
	Price          *float64
	PaymentStatus  job.PaymentStatus
	RouteSequence  *int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
