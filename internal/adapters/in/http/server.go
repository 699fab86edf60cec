package http

import (
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
)

// Handlers are the use cases the HTTP surface exposes.
type Handlers struct {
	// Command handlers
	CreateJob              commands.CreateJobCommandHandler
	AssignDriver           commands.AssignDriverCommandHandler
	TransitionJobStatus    commands.TransitionJobStatusCommandHandler
	UpdateJobFields        commands.UpdateJobFieldsCommandHandler
	ApplyRoute             commands.ApplyRouteCommandHandler
	CaptureProofOfDelivery commands.CaptureProofOfDeliveryCommandHandler
	CreatePaymentIntent    commands.CreatePaymentIntentCommandHandler
	RecordPaymentOutcome   commands.RecordPaymentOutcomeCommandHandler
	RegisterDriver         commands.RegisterDriverCommandHandler
	UpdateDriverLocation   commands.UpdateDriverLocationCommandHandler
	ChangeDriverDuty       commands.ChangeDriverDutyCommandHandler
	UpdateDriverProfile    commands.UpdateDriverProfileCommandHandler
	RegisterCustomer       commands.RegisterCustomerCommandHandler
	CreatePricingRule      commands.CreatePricingRuleCommandHandler
	SetPricingRuleActive   commands.SetPricingRuleActiveCommandHandler

	// Query handlers
	GetJob             queries.GetJobQueryHandler
	ListJobs           queries.ListJobsQueryHandler
	GetProofOfDelivery queries.GetProofOfDeliveryQueryHandler
	GetTrackingInfo    queries.GetTrackingInfoQueryHandler
	OptimizeRoute      queries.OptimizeRouteQueryHandler
	QuotePrice         queries.QuotePriceQueryHandler
}

// Server translates HTTP requests into commands and queries and their results into JSON.
// Errors are returned to echo and rendered by NewErrorHandler.
type Server struct {
	h    Handlers
	auth *Authenticator
}

func NewServer(handlers Handlers, auth *Authenticator) *Server {
	return &Server{
		h:    handlers,
		auth: auth,
	}
}
