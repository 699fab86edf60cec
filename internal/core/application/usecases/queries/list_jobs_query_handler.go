package queries

import (
	"context"
	"fmt"
	"time"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListJobsQueryHandler builds the filtered listing with goqu on the connection pool behind
// the gorm handle, in the SQL dialect of that handle.
type ListJobsQueryHandler struct {
	db *gorm.DB
}

func NewListJobsQueryHandler(db *gorm.DB) ListJobsQueryHandler {
	return ListJobsQueryHandler{db: db}
}

type jobSummaryRow struct {
	ID             uuid.UUID  `db:"id"`
	TrackingCode   string     `db:"tracking_code"`
	Status         string     `db:"status"`
	CustomerID     uuid.UUID  `db:"customer_id"`
	DriverID       *uuid.UUID `db:"driver_id"`
	PickupAddress  string     `db:"pickup_address"`
	DropoffAddress string     `db:"dropoff_address"`
	Price          *float64   `db:"price"`
	PaymentStatus  string     `db:"payment_status"`
	RouteSequence  *int       `db:"route_sequence"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

func (h ListJobsQueryHandler) Handle(ctx context.Context, query ListJobsQuery) ([]JobSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return nil, err
	}

	rows := make([]jobSummaryRow, 0, query.Limit())
	err = listJobsDataset(goqu.New(goquDialect(h.db), sqlDB), query).
		Executor().
		ScanStructsContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]JobSummary, 0, len(rows))
	for _, row := range rows {
		summary, convErr := row.toSummary()
		if convErr != nil {
			return nil, convErr
		}
		jobs = append(jobs, summary)
	}

	return jobs, nil
}

func goquDialect(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "sqlite3"
	}
	return "postgres"
}

func listJobsDataset(db *goqu.Database, query ListJobsQuery) *goqu.SelectDataset {
	where := goqu.Ex{}
	filter := query.Filter()
	if filter.Status != nil {
		where["status"] = filter.Status.String()
	}

	ds := db.From("jobs").
		Select(
			"id", "tracking_code", "status", "customer_id", "driver_id",
			"pickup_address", "dropoff_address", "price", "payment_status",
			"route_sequence", "created_at", "updated_at",
		).
		Where(where)
	if filter.CreatedAfter != nil {
		ds = ds.Where(goqu.C("created_at").Gte(filter.CreatedAfter.UTC()))
	}
	if filter.CreatedBefore != nil {
		ds = ds.Where(goqu.C("created_at").Lte(filter.CreatedBefore.UTC()))
	}

	return ds.
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc()).
		Offset(uint(query.Skip())).
		Limit(uint(query.Limit())).
		Prepared(true)
}

func (r jobSummaryRow) toSummary() (JobSummary, error) {
	id, err := kernel.UUIDFromGoogle(r.ID)
	if err != nil {
		return JobSummary{}, err
	}
	customerID, err := kernel.UUIDFromGoogle(r.CustomerID)
	if err != nil {
		return JobSummary{}, err
	}
	status, err := job.ParseStatus(r.Status)
	if err != nil {
		return JobSummary{}, err
	}
	paymentStatus, err := job.ParsePaymentStatus(r.PaymentStatus)
	if err != nil {
		return JobSummary{}, err
	}

	summary := JobSummary{
		ID:             id,
		TrackingCode:   r.TrackingCode,
		Status:         status,
		CustomerID:     customerID,
		PickupAddress:  r.PickupAddress,
		DropoffAddress: r.DropoffAddress,
		Price:          r.Price,
		PaymentStatus:  paymentStatus,
		RouteSequence:  r.RouteSequence,
		CreatedAt:      r.CreatedAt.UTC(),
		UpdatedAt:      r.UpdatedAt.UTC(),
	}
	if r.DriverID != nil {
		driverID, idErr := kernel.UUIDFromGoogle(*r.DriverID)
		if idErr != nil {
			return JobSummary{}, idErr
		}
		summary.DriverID = &driverID
	}

	return summary, nil
}
