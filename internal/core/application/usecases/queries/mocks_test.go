package queries_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

type MockClock struct{ mock.Mock }

func (m *MockClock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

type MockGeocoder struct{ mock.Mock }

func (m *MockGeocoder) Geocode(ctx context.Context, address kernel.Address) (kernel.Location, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(kernel.Location), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) TrackingCodeExists(ctx context.Context, code job.TrackingCode) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockJobRepository) FindForDriverForUpdate(ctx context.Context, driverID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, driverID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) FindForDriver(ctx context.Context, driverID kernel.UUID, ids []kernel.UUID) ([]*job.Job, error) {
	args := m.Called(ctx, driverID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

func (m *MockJobRepository) FindActiveForDriverSince(ctx context.Context, driverID kernel.UUID, since time.Time) ([]*job.Job, error) {
	args := m.Called(ctx, driverID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, d *driver.Driver) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*driver.Driver), args.Error(1)
}

func (m *MockDriverRepository) ExistsByAccountID(ctx context.Context, accountID kernel.UUID) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDriverRepository) FindOnDutySilentSince(ctx context.Context, cutoff time.Time) ([]*driver.Driver, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*driver.Driver), args.Error(1)
}

type MockPricingRuleRepository struct{ mock.Mock }

func (m *MockPricingRuleRepository) Add(ctx context.Context, r *pricing.Rule) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPricingRuleRepository) Update(ctx context.Context, r *pricing.Rule) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockPricingRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Rule), args.Error(1)
}

func (m *MockPricingRuleRepository) GetActive(ctx context.Context) (*pricing.Rule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pricing.Rule), args.Error(1)
}

type MockProofRepository struct{ mock.Mock }

func (m *MockProofRepository) Add(ctx context.Context, p *pod.ProofOfDelivery) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProofRepository) GetByJobID(ctx context.Context, jobID kernel.UUID) (*pod.ProofOfDelivery, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pod.ProofOfDelivery), args.Error(1)
}

func (m *MockProofRepository) ExistsForJob(ctx context.Context, jobID kernel.UUID) (bool, error) {
	args := m.Called(ctx, jobID)
	return args.Bool(0), args.Error(1)
}

// fakeReaders hands out the same repository mocks on every Create.
type fakeReaders struct {
	jobs    *MockJobRepository
	drivers *MockDriverRepository
	rules   *MockPricingRuleRepository
	proofs  *MockProofRepository
}

func newFakeReaders() *fakeReaders {
	return &fakeReaders{
		jobs:    new(MockJobRepository),
		drivers: new(MockDriverRepository),
		rules:   new(MockPricingRuleRepository),
		proofs:  new(MockProofRepository),
	}
}

func (f *fakeReaders) Create() queries.Readers { return f }

func (f *fakeReaders) JobRepository() ports.JobRepository                 { return f.jobs }
func (f *fakeReaders) DriverRepository() ports.DriverRepository           { return f.drivers }
func (f *fakeReaders) PricingRuleRepository() ports.PricingRuleRepository { return f.rules }
func (f *fakeReaders) ProofOfDeliveryRepository() ports.ProofOfDeliveryRepository {
	return f.proofs
}

func (f *fakeReaders) assertExpectations(t *testing.T) {
	t.Helper()
	f.jobs.AssertExpectations(t)
	f.drivers.AssertExpectations(t)
	f.rules.AssertExpectations(t)
	f.proofs.AssertExpectations(t)
}

func location(t *testing.T, lat float64, lng float64) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	return loc
}

// assignedJob restores an assigned job with the given addresses.
func assignedJob(t *testing.T, driverID kernel.UUID, pickup kernel.Address, dropoff kernel.Address) *job.Job {
	t.Helper()

	j, err := job.RestoreJob(job.Snapshot{
		ID:            kernel.NewUUID(),
		TrackingCode:  "TRACK0000001",
		Status:        job.Assigned,
		CustomerID:    kernel.NewUUID(),
		DriverID:      &driverID,
		Pickup:        pickup,
		Dropoff:       dropoff,
		PaymentStatus: job.PaymentUnpaid,
		CreatedAt:     now.Add(-time.Hour),
		UpdatedAt:     now.Add(-time.Hour),
	})
	require.NoError(t, err)
	return j
}
