package commands_test

import (
	"context"
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/customer"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pod"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	createdAt = time.Date(2026, 6, 10, 8, 0, 0, 0, time.UTC)
	now       = time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)
)

type MockClock struct{ mock.Mock }

func (m *MockClock) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func fixedClock() *MockClock {
	c := new(MockClock)
	c.On("Now").Return(now).Maybe()
	return c
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

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
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

// MockUoW satisfies every unit of work interface of the package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) JobRepository() ports.JobRepository {
	return m.Called().Get(0).(ports.JobRepository)
}

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	return m.Called().Get(0).(ports.DriverRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) PricingRuleRepository() ports.PricingRuleRepository {
	return m.Called().Get(0).(ports.PricingRuleRepository)
}

func (m *MockUoW) ProofOfDeliveryRepository() ports.ProofOfDeliveryRepository {
	return m.Called().Get(0).(ports.ProofOfDeliveryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	return m.Called().Get(0).(commands.DriverUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockPricingUoWFactory struct{ mock.Mock }

func (m *MockPricingUoWFactory) Create() commands.PricingUoW {
	return m.Called().Get(0).(commands.PricingUoW)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) CreateIntent(ctx context.Context, req ports.PaymentIntentRequest) (ports.PaymentIntent, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.PaymentIntent), args.Error(1)
}

// uowFixture wires a MockUoW to fresh repository mocks. Repository accessors may be
// called any number of times; Begin and Rollback are always expected.
type uowFixture struct {
	uow       *MockUoW
	jobs      *MockJobRepository
	drivers   *MockDriverRepository
	customers *MockCustomerRepository
	rules     *MockPricingRuleRepository
	proofs    *MockProofRepository
}

func newUoWFixture(ctx context.Context) *uowFixture {
	f := &uowFixture{
		uow:       new(MockUoW),
		jobs:      new(MockJobRepository),
		drivers:   new(MockDriverRepository),
		customers: new(MockCustomerRepository),
		rules:     new(MockPricingRuleRepository),
		proofs:    new(MockProofRepository),
	}
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
	f.uow.On("JobRepository").Return(f.jobs).Maybe()
	f.uow.On("DriverRepository").Return(f.drivers).Maybe()
	f.uow.On("CustomerRepository").Return(f.customers).Maybe()
	f.uow.On("PricingRuleRepository").Return(f.rules).Maybe()
	f.uow.On("ProofOfDeliveryRepository").Return(f.proofs).Maybe()
	return f
}

func (f *uowFixture) expectCommit(ctx context.Context) {
	f.uow.On("Commit", ctx).Return(nil).Once()
}

func (f *uowFixture) factory() *MockUoWFactory {
	factory := new(MockUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	return factory
}

func (f *uowFixture) driverFactory() *MockDriverUoWFactory {
	factory := new(MockDriverUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	return factory
}

func (f *uowFixture) customerFactory() *MockCustomerUoWFactory {
	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	return factory
}

func (f *uowFixture) pricingFactory() *MockPricingUoWFactory {
	factory := new(MockPricingUoWFactory)
	factory.On("Create").Return(f.uow).Once()
	return factory
}

func (f *uowFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.jobs.AssertExpectations(t)
	f.drivers.AssertExpectations(t)
	f.customers.AssertExpectations(t)
	f.rules.AssertExpectations(t)
	f.proofs.AssertExpectations(t)
}

func ptr[T any](v T) *T {
	return &v
}

// jobIn restores a job in the given status; non-pending jobs get driverID.
func jobIn(t *testing.T, status job.Status, customerID kernel.UUID, driverID kernel.UUID, price *float64) *job.Job {
	t.Helper()

	var driverRef *kernel.UUID
	if status != job.Pending {
		driverRef = &driverID
	}
	j, err := job.RestoreJob(job.Snapshot{
		ID:            kernel.NewUUID(),
		TrackingCode:  "TRACK0000001",
		Status:        status,
		CustomerID:    customerID,
		DriverID:      driverRef,
		Pickup:        "1 Pickup Lane",
		Dropoff:       "2 Dropoff Road",
		Price:         price,
		PaymentStatus: job.PaymentUnpaid,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	})
	require.NoError(t, err)
	return j
}

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()

	d, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "Ada Lovelace", "+44 20 7946 0000", nil, createdAt)
	require.NoError(t, err)
	return d
}
