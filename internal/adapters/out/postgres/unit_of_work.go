// Package postgres provides the GORM implementation of the Unit of Work.
//
// A GormUnitOfWork wraps one database transaction. Repositories requested after Begin
// share that transaction, so a use case can lock a job row with GetForUpdate, change a
// driver and write both back before a single Commit.
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	j, err := uow.JobRepository().GetForUpdate(ctx, id)
//	...
//	return uow.Commit(ctx)
//
// Repositories requested before Begin run in autocommit mode. A UnitOfWork is not safe for
// concurrent use; every goroutine creates its own from the factory.
package postgres

import (
	"context"

	"courier/internal/adapters/out/postgres/customerrepo"
	"courier/internal/adapters/out/postgres/driverrepo"
	"courier/internal/adapters/out/postgres/jobrepo"
	"courier/internal/adapters/out/postgres/podrepo"
	"courier/internal/adapters/out/postgres/pricingrepo"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"

	"gorm.io/gorm"
)

// Models lists every persisted DTO. It drives AutoMigrate in tests and the sqlite mode.
func Models() []any {
	return []any{
		&customerrepo.CustomerDTO{},
		&driverrepo.DriverDTO{},
		&jobrepo.JobDTO{},
		&pricingrepo.PricingRuleDTO{},
		&podrepo.ProofOfDeliveryDTO{},
	}
}

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return nil
}

func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the open transaction. Without one it returns gorm.ErrInvalidTransaction,
// which is what a deferred Rollback sees after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) JobRepository() ports.JobRepository {
	return jobrepo.NewGormJobRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PricingRuleRepository() ports.PricingRuleRepository {
	return pricingrepo.NewGormPricingRuleRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) ProofOfDeliveryRepository() ports.ProofOfDeliveryRepository {
	return podrepo.NewGormProofOfDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedCount reports how many aggregates were written in the current transaction.
func (uow *GormUnitOfWork) TrackedCount() int {
	return len(uow.trackedAggregates)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
