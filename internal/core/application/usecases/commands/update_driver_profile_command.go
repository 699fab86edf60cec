package commands

import (
	"errors"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrUpdateDriverProfileCommandIsNotConstructed = errors.New(
	"UpdateDriverProfileCommand must be created via NewUpdateDriverProfileCommand constructor",
)

// UpdateDriverProfileCommand edits a driver's contact details.
type UpdateDriverProfileCommand struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID
	update   driver.ProfileUpdate

	guard guard.ConstructorGuard
}

func NewUpdateDriverProfileCommand(driverID kernel.UUID, update driver.ProfileUpdate) (UpdateDriverProfileCommand, error) {
	if err := driverID.Validate(); err != nil {
		return UpdateDriverProfileCommand{}, err
	}

	return UpdateDriverProfileCommand{
		driverID: driverID,
		update:   update,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateDriverProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverProfileCommandIsNotConstructed)
}

func (c UpdateDriverProfileCommand) DriverID() kernel.UUID        { return c.driverID }
func (c UpdateDriverProfileCommand) Update() driver.ProfileUpdate { return c.update }
