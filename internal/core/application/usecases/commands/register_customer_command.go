package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrRegisterCustomerCommandIsNotConstructed = errors.New(
	"RegisterCustomerCommand must be created via NewRegisterCustomerCommand constructor",
)

// RegisterCustomerCommand creates a customer. Name and email rules live in the aggregate.
type RegisterCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string
	phone *string

	guard guard.ConstructorGuard
}

func NewRegisterCustomerCommand(name string, email string, phone *string) RegisterCustomerCommand {
	return RegisterCustomerCommand{
		name:  name,
		email: email,
		phone: phone,
		guard: guard.NewConstructorGuard(),
	}
}

func (c RegisterCustomerCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCustomerCommandIsNotConstructed)
}

func (c RegisterCustomerCommand) Name() string   { return c.name }
func (c RegisterCustomerCommand) Email() string  { return c.email }
func (c RegisterCustomerCommand) Phone() *string { return c.phone }
