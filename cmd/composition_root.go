package cmd

import (
	"log/slog"

	"courier/internal/adapters/in/http"
	"courier/internal/adapters/out/clock"
	"courier/internal/adapters/out/geo"
	"courier/internal/adapters/out/payments"
	"courier/internal/adapters/out/postgres"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/services"
	"courier/internal/core/ports"
	"courier/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory postgres.GormUnitOfWorkFactory
	clock      ports.Clock
	gateway    ports.PaymentGateway
	geocoder   ports.Geocoder
	distance   ports.DistanceCalculator
}

// Option overrides one collaborator of the composition root.
type Option func(*CompositionRoot)

func WithClock(c ports.Clock) Option {
	return func(r *CompositionRoot) { r.clock = c }
}

func WithPaymentGateway(g ports.PaymentGateway) Option {
	return func(r *CompositionRoot) { r.gateway = g }
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger, opts ...Option) CompositionRoot {
	root := CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      clock.NewSystemClock(),
		gateway:    payments.NewStubGateway(cfg.PaymentCurrency),
		geocoder:   geo.NewHashGeocoder(),
		distance:   geo.NewHaversineCalculator(),
	}
	for _, opt := range opts {
		opt(&root)
	}
	return root
}

func (c *CompositionRoot) jobUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pricingUoWFactory() commands.PricingUoWFactory {
	return FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
}

// readers hands queries a unit of work that is never begun, so its repositories read
// outside any transaction.
func (c *CompositionRoot) readers() queries.ReadersFactory {
	return FuncReadersFactory(func() queries.Readers {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateMarkStaleDriversOffDutyCommandHandler() commands.MarkStaleDriversOffDutyCommandHandler {
	return commands.NewMarkStaleDriversOffDutyCommandHandler(c.driverUoWFactory(), c.clock)
}

// HTTPHandlers builds every use case the HTTP surface exposes.
func (c *CompositionRoot) HTTPHandlers() http.Handlers {
	jobUoW := c.jobUoWFactory()
	drivers := c.driverUoWFactory()
	pricingRules := c.pricingUoWFactory()
	readers := c.readers()

	return http.Handlers{
		CreateJob:              commands.NewCreateJobCommandHandler(jobUoW, c.clock, nil),
		AssignDriver:           commands.NewAssignDriverCommandHandler(jobUoW, c.clock),
		TransitionJobStatus:    commands.NewTransitionJobStatusCommandHandler(jobUoW, c.clock),
		UpdateJobFields:        commands.NewUpdateJobFieldsCommandHandler(jobUoW, c.clock),
		ApplyRoute:             commands.NewApplyRouteCommandHandler(jobUoW, c.clock),
		CaptureProofOfDelivery: commands.NewCaptureProofOfDeliveryCommandHandler(jobUoW, c.clock),
		CreatePaymentIntent:    commands.NewCreatePaymentIntentCommandHandler(jobUoW, c.gateway, c.clock, c.cfg.PaymentCurrency),
		RecordPaymentOutcome:   commands.NewRecordPaymentOutcomeCommandHandler(jobUoW, c.clock),
		RegisterDriver:         commands.NewRegisterDriverCommandHandler(drivers, c.clock),
		UpdateDriverLocation:   commands.NewUpdateDriverLocationCommandHandler(drivers, c.clock),
		ChangeDriverDuty:       commands.NewChangeDriverDutyCommandHandler(drivers, c.clock),
		UpdateDriverProfile:    commands.NewUpdateDriverProfileCommandHandler(drivers, c.clock),
		RegisterCustomer:       commands.NewRegisterCustomerCommandHandler(c.customerUoWFactory(), c.clock),
		CreatePricingRule:      commands.NewCreatePricingRuleCommandHandler(pricingRules, c.clock),
		SetPricingRuleActive:   commands.NewSetPricingRuleActiveCommandHandler(pricingRules),

		GetJob:             queries.NewGetJobQueryHandler(readers),
		ListJobs:           queries.NewListJobsQueryHandler(c.gormDB),
		GetProofOfDelivery: queries.NewGetProofOfDeliveryQueryHandler(readers),
		GetTrackingInfo:    queries.NewGetTrackingInfoQueryHandler(c.gormDB),
		OptimizeRoute: queries.NewOptimizeRouteQueryHandler(
			readers, c.geocoder, services.NewRouteSolver(c.distance), c.clock),
		QuotePrice: queries.NewQuotePriceQueryHandler(readers),
	}
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(c.HTTPHandlers(), http.NewAuthenticator(c.cfg.JWTSecret))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateMarkStaleDriversOffDutyCommandHandler(),
		c.cfg.StaleDriverSchedule,
		c.cfg.StaleDriverAfter,
		c.logger,
	)
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncReadersFactory func() queries.Readers

func (f FuncReadersFactory) Create() queries.Readers {
	return f()
}
