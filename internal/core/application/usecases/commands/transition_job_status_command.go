package commands

import (
	"errors"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrTransitionJobStatusCommandIsNotConstructed = errors.New(
	"TransitionJobStatusCommand must be created via NewTransitionJobStatusCommand constructor",
)

// TransitionJobStatusCommand requests a move along the job lifecycle.
type TransitionJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	target job.Status

	guard guard.ConstructorGuard
}

func NewTransitionJobStatusCommand(jobID kernel.UUID, target job.Status) (TransitionJobStatusCommand, error) {
	if err := errors.Join(jobID.Validate(), target.Validate()); err != nil {
		return TransitionJobStatusCommand{}, err
	}

	return TransitionJobStatusCommand{
		jobID:  jobID,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c TransitionJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionJobStatusCommandIsNotConstructed)
}

func (c TransitionJobStatusCommand) JobID() kernel.UUID { return c.jobID }
func (c TransitionJobStatusCommand) Target() job.Status { return c.target }
