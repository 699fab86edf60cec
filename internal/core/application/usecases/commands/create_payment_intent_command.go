package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand starts the payment of a job by the customer who owns it.
type CreatePaymentIntentCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	jobID      kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreatePaymentIntentCommand(customerID kernel.UUID, jobID kernel.UUID) (CreatePaymentIntentCommand, error) {
	if err := errors.Join(customerID.Validate(), jobID.Validate()); err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return CreatePaymentIntentCommand{
		customerID: customerID,
		jobID:      jobID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

func (c CreatePaymentIntentCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreatePaymentIntentCommand) JobID() kernel.UUID      { return c.jobID }
