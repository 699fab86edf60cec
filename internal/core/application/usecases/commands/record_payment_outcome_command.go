package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrRecordPaymentOutcomeCommandIsNotConstructed = errors.New(
	"RecordPaymentOutcomeCommand must be created via NewRecordPaymentOutcomeCommand constructor",
)

// RecordPaymentOutcomeCommand carries a gateway notification about a job's payment.
type RecordPaymentOutcomeCommand struct { //nolint:recvcheck //using for validation
	jobID     kernel.UUID
	succeeded bool
	reference string

	guard guard.ConstructorGuard
}

func NewRecordPaymentOutcomeCommand(jobID kernel.UUID, succeeded bool, reference string) (RecordPaymentOutcomeCommand, error) {
	if err := jobID.Validate(); err != nil {
		return RecordPaymentOutcomeCommand{}, err
	}

	return RecordPaymentOutcomeCommand{
		jobID:     jobID,
		succeeded: succeeded,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c RecordPaymentOutcomeCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentOutcomeCommandIsNotConstructed)
}

func (c RecordPaymentOutcomeCommand) JobID() kernel.UUID { return c.jobID }
func (c RecordPaymentOutcomeCommand) Succeeded() bool    { return c.succeeded }
func (c RecordPaymentOutcomeCommand) Reference() string  { return c.reference }
