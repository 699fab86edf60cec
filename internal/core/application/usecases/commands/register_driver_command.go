package commands

import (
	"errors"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrRegisterDriverCommandIsNotConstructed = errors.New(
	"RegisterDriverCommand must be created via NewRegisterDriverCommand constructor",
)

// RegisterDriverCommand creates the driver profile of a user account.
// Name and phone are checked by the driver aggregate.
type RegisterDriverCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.UUID
	name        string
	phone       string
	vehicleInfo *string

	guard guard.ConstructorGuard
}

func NewRegisterDriverCommand(accountID kernel.UUID, name string, phone string, vehicleInfo *string) (RegisterDriverCommand, error) {
	if err := accountID.Validate(); err != nil {
		return RegisterDriverCommand{}, err
	}

	return RegisterDriverCommand{
		accountID:   accountID,
		name:        name,
		phone:       phone,
		vehicleInfo: vehicleInfo,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterDriverCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDriverCommandIsNotConstructed)
}

func (c RegisterDriverCommand) AccountID() kernel.UUID { return c.accountID }
func (c RegisterDriverCommand) Name() string           { return c.name }
func (c RegisterDriverCommand) Phone() string          { return c.phone }
func (c RegisterDriverCommand) VehicleInfo() *string   { return c.vehicleInfo }
