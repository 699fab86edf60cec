package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgres_adapter "courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/dbtest"
	"courier/internal/core/domain/model/customer"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the row-locking paths against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	db        *gorm.DB
	terminate func(context.Context) error
	factory   ports.UnitOfWorkFactory
	now       time.Time
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping PostgreSQL container tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}

func (s *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	db, terminate, err := dbtest.StartPostgres(context.Background(), postgres_adapter.Models()...)
	s.Require().NoError(err)
	s.db = db
	s.terminate = terminate
	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
	s.now = time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
}

func (s *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE jobs, drivers, customers, pricing_rules, proofs_of_delivery").Error
	s.Require().NoError(err)
}

func (s *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if s.terminate != nil {
		s.Require().NoError(s.terminate(context.Background()))
	}
}

func (s *UnitOfWorkIntegrationTestSuite) seedPendingJob() *job.Job {
	ctx := s.T().Context()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Mary", "mary@example.com", nil, s.now)
	s.Require().NoError(err)
	j, err := job.NewJob(kernel.NewUUID(), "RACE00000001", c.ID(), "1 Pickup Lane", "2 Dropoff Road", nil, nil, s.now)
	s.Require().NoError(err)

	uow := s.factory.Create()
	s.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	s.Require().NoError(uow.JobRepository().Add(ctx, j))
	return j
}

func (s *UnitOfWorkIntegrationTestSuite) seedDriver(name string) *driver.Driver {
	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), name, "+44 1", nil, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.factory.Create().DriverRepository().Add(s.T().Context(), d))
	return d
}

func (s *UnitOfWorkIntegrationTestSuite) assign(ctx context.Context, jobID kernel.UUID, driverID kernel.UUID) error {
	uow := s.factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	j, err := uow.JobRepository().GetForUpdate(ctx, jobID)
	if err != nil {
		return err
	}
	if err = j.AssignDriver(driverID, s.now); err != nil {
		return err
	}
	if err = uow.JobRepository().Update(ctx, j); err != nil {
		return err
	}
	return uow.Commit(ctx)
}

func (s *UnitOfWorkIntegrationTestSuite) TestConcurrentAssignment_ExactlyOneDriverWins() {
	ctx := s.T().Context()
	j := s.seedPendingJob()
	drivers := []*driver.Driver{s.seedDriver("Ada"), s.seedDriver("Bob")}

	var wg sync.WaitGroup
	start := make(chan struct{})
	results := make([]error, len(drivers))
	for i, d := range drivers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results[i] = s.assign(ctx, j.ID(), d.ID())
		}()
	}
	close(start)
	wg.Wait()

	var wins, conflicts int
	for _, err := range results {
		switch {
		case err == nil:
			wins++
		case errs.IsConflict(err):
			conflicts++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, wins)
	s.Equal(1, conflicts)

	stored, err := s.factory.Create().JobRepository().Get(ctx, j.ID())
	s.Require().NoError(err)
	s.Equal(job.Assigned, stored.Status())
	s.NotNil(stored.DriverID())
}

func (s *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_BlocksSecondWriterUntilCommit() {
	ctx := s.T().Context()
	j := s.seedPendingJob()
	first := s.seedDriver("Ada")
	second := s.seedDriver("Bob")

	holder := s.factory.Create()
	s.Require().NoError(holder.Begin(ctx))
	locked, err := holder.JobRepository().GetForUpdate(ctx, j.ID())
	s.Require().NoError(err)

	done := make(chan error, 1)
	go func() { done <- s.assign(ctx, j.ID(), second.ID()) }()

	select {
	case err = <-done:
		s.Failf("second writer was not blocked", "returned %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	s.Require().NoError(locked.AssignDriver(first.ID(), s.now))
	s.Require().NoError(holder.JobRepository().Update(ctx, locked))
	s.Require().NoError(holder.Commit(ctx))

	s.ErrorIs(<-done, errs.ErrConflict)

	stored, err := s.factory.Create().JobRepository().Get(ctx, j.ID())
	s.Require().NoError(err)
	s.True(stored.IsAssignedTo(first.ID()))
}
