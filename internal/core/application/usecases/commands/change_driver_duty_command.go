package commands

import (
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrChangeDriverDutyCommandIsNotConstructed = errors.New(
	"ChangeDriverDutyCommand must be created via NewChangeDriverDutyCommand constructor",
)

// ChangeDriverDutyCommand switches a driver on or off duty.
type ChangeDriverDutyCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	duty     driver.Duty

	guard guard.ConstructorGuard
}

func NewChangeDriverDutyCommand(driverID kernel.UUID, duty driver.Duty) (ChangeDriverDutyCommand, error) {
	if err := errors.Join(driverID.Validate(), duty.Validate()); err != nil {
		return ChangeDriverDutyCommand{}, err
	}

	return ChangeDriverDutyCommand{
		driverID: driverID,
		duty:     duty,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeDriverDutyCommand) Validate() error {
	return c.guard.Validate(ErrChangeDriverDutyCommandIsNotConstructed)
}

func (c ChangeDriverDutyCommand) DriverID() kernel.UUID { return c.driverID }
func (c ChangeDriverDutyCommand) Duty() driver.Duty     { return c.duty }
