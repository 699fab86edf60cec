package queries_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/dbtest"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ListJobsQueryHandlerTestSuite struct {
	suite.Suite
	db        *gorm.DB
	terminate func(context.Context) error
	uow       ports.UnitOfWork
	handler   queries.ListJobsQueryHandler
}

func (s *ListJobsQueryHandlerTestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("postgres container tests are skipped in short mode")
	}

	db, terminate, err := dbtest.StartPostgres(context.Background(), postgres.Models()...)
	s.Require().NoError(err)
	s.db = db
	s.terminate = terminate
	s.uow = postgres.NewGormUnitOfWorkFactory(db).Create()
	s.handler = queries.NewListJobsQueryHandler(db)
}

func (s *ListJobsQueryHandlerTestSuite) TearDownSuite() {
	if s.terminate != nil {
		s.Require().NoError(s.terminate(context.Background()))
	}
}

func (s *ListJobsQueryHandlerTestSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE jobs").Error)
}

// seed stores n pending jobs created an hour apart, the newest at now.
func (s *ListJobsQueryHandlerTestSuite) seed(n int) []*job.Job {
	jobs := make([]*job.Job, 0, n)
	for i := range n {
		price := float64(10 + i)
		j, err := job.NewJob(kernel.NewUUID(), job.TrackingCode(fmt.Sprintf("LIST%08d", i)), kernel.NewUUID(),
			"1 Pickup Lane", "2 Dropoff Road", &price, nil, now.Add(-time.Duration(n-1-i)*time.Hour))
		s.Require().NoError(err)
		s.Require().NoError(s.uow.JobRepository().Add(s.T().Context(), j))
		jobs = append(jobs, j)
	}
	return jobs
}

func (s *ListJobsQueryHandlerTestSuite) list(filter queries.ListJobsFilter, skip int, limit int) []queries.JobSummary {
	query, err := queries.NewListJobsQuery(filter, skip, limit)
	s.Require().NoError(err)

	result, err := s.handler.Handle(s.T().Context(), query)
	s.Require().NoError(err)
	return result
}

func (s *ListJobsQueryHandlerTestSuite) TestHandle_NewestFirstWithPaging() {
	jobs := s.seed(5)

	page := s.list(queries.ListJobsFilter{}, 1, 2)

	s.Require().Len(page, 2)
	s.Equal(jobs[3].ID(), page[0].ID)
	s.Equal(jobs[2].ID(), page[1].ID)
	s.Require().NotNil(page[0].Price)
	s.InDelta(13.0, *page[0].Price, 1e-9)
	s.Equal(job.PaymentUnpaid, page[0].PaymentStatus)
	s.Nil(page[0].DriverID)
}

func (s *ListJobsQueryHandlerTestSuite) TestHandle_FiltersByStatus() {
	jobs := s.seed(3)
	driverID := kernel.NewUUID()
	s.Require().NoError(jobs[1].AssignDriver(driverID, now))
	s.Require().NoError(s.uow.JobRepository().Update(s.T().Context(), jobs[1]))

	assigned := job.Assigned
	result := s.list(queries.ListJobsFilter{Status: &assigned}, 0, queries.DefaultListLimit)

	s.Require().Len(result, 1)
	s.Equal(jobs[1].ID(), result[0].ID)
	s.Equal(job.Assigned, result[0].Status)
	s.Require().NotNil(result[0].DriverID)
	s.Equal(driverID, *result[0].DriverID)
}

func (s *ListJobsQueryHandlerTestSuite) TestHandle_CreatedBoundsAreInclusive() {
	jobs := s.seed(4)
	after := jobs[1].CreatedAt()
	before := jobs[2].CreatedAt()

	result := s.list(queries.ListJobsFilter{CreatedAfter: &after, CreatedBefore: &before}, 0, queries.DefaultListLimit)

	s.Require().Len(result, 2)
	s.Equal(jobs[2].ID(), result[0].ID)
	s.Equal(jobs[1].ID(), result[1].ID)
}

func (s *ListJobsQueryHandlerTestSuite) TestHandle_EmptyTable() {
	result := s.list(queries.ListJobsFilter{}, 0, queries.DefaultListLimit)

	s.NotNil(result)
	s.Empty(result)
}

func TestListJobsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListJobsQueryHandlerTestSuite))
}

func TestNewListJobsQuery_Bounds(t *testing.T) {
	_, err := queries.NewListJobsQuery(queries.ListJobsFilter{}, 0, queries.MaxListLimit)
	require.NoError(t, err)

	_, err = queries.NewListJobsQuery(queries.ListJobsFilter{}, 0, queries.MaxListLimit+1)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewListJobsQuery(queries.ListJobsFilter{}, 0, 0)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = queries.NewListJobsQuery(queries.ListJobsFilter{}, -1, 10)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	unknown := job.Status(99)
	_, err = queries.NewListJobsQuery(queries.ListJobsFilter{Status: &unknown}, 0, 10)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
