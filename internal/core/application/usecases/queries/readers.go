package queries

import "courier/internal/core/ports"

// Readers hands query handlers repositories that run outside any transaction.
// A ports.UnitOfWork that was never begun satisfies it.
type Readers interface {
	JobRepository() ports.JobRepository
	DriverRepository() ports.DriverRepository
	PricingRuleRepository() ports.PricingRuleRepository
	ProofOfDeliveryRepository() ports.ProofOfDeliveryRepository
}

type ReadersFactory interface {
	Create() Readers
}
