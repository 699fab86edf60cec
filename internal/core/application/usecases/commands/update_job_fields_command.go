package commands

import (
	"errors"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrUpdateJobFieldsCommandIsNotConstructed = errors.New(
	"UpdateJobFieldsCommand must be created via NewUpdateJobFieldsCommand constructor",
)

// UpdateJobFieldsCommand edits the descriptive fields of a job. Nil pointers leave a field
// unchanged; the Clear flags remove the optional price or notes.
type UpdateJobFieldsCommand struct { //nolint:recvcheck //using for validation
	jobID  kernel.UUID
	update job.FieldsUpdate

	guard guard.ConstructorGuard
}

func NewUpdateJobFieldsCommand(jobID kernel.UUID, update job.FieldsUpdate) (UpdateJobFieldsCommand, error) {
	if err := jobID.Validate(); err != nil {
		return UpdateJobFieldsCommand{}, err
	}
	if update.Price != nil && update.ClearPrice {
		return UpdateJobFieldsCommand{}, errs.NewValueIsInvalidErrorWithCause("price",
			errors.New("price cannot be set and cleared at once"))
	}
	if update.Notes != nil && update.ClearNotes {
		return UpdateJobFieldsCommand{}, errs.NewValueIsInvalidErrorWithCause("notes",
			errors.New("notes cannot be set and cleared at once"))
	}

	return UpdateJobFieldsCommand{
		jobID:  jobID,
		update: update,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateJobFieldsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobFieldsCommandIsNotConstructed)
}

func (c UpdateJobFieldsCommand) JobID() kernel.UUID       { return c.jobID }
func (c UpdateJobFieldsCommand) Update() job.FieldsUpdate { return c.update }
