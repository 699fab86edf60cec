package commands

import (
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrCreateJobCommandIsNotConstructed = errors.New(
	"CreateJobCommand must be created via NewCreateJobCommand constructor",
)

// CreateJobCommand asks for a new pending delivery job for an existing customer.
//
// Example:
//
//	cmd, err := NewCreateJobCommand(customerID, "221B Baker Street", "10 Downing Street", &price, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid job data: %w", err)
//	}
//	j, err := handler.Handle(ctx, cmd)
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	pickup     kernel.Address
	dropoff    kernel.Address
	price      *float64
	notes      *string

	guard guard.ConstructorGuard
}

func NewCreateJobCommand(
	customerID kernel.UUID,
	pickup string,
	dropoff string,
	price *float64,
	notes *string,
) (CreateJobCommand, error) {
	cmd := CreateJobCommand{
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPickup(pickup),
		cmd.setDropoff(dropoff),
	); err != nil {
		return CreateJobCommand{}, err
	}
	if notes != nil {
		if trimmed := strings.TrimSpace(*notes); trimmed != "" {
			cmd.notes = &trimmed
		}
	}

	return cmd, nil
}

func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

func (c CreateJobCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateJobCommand) Pickup() kernel.Address  { return c.pickup }
func (c CreateJobCommand) Dropoff() kernel.Address { return c.dropoff }
func (c CreateJobCommand) Price() *float64         { return c.price }
func (c CreateJobCommand) Notes() *string          { return c.notes }

func (c *CreateJobCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateJobCommand) setPickup(s string) error {
	addr, err := kernel.NewAddress(s)
	if err != nil {
		return err
	}
	c.pickup = addr
	return nil
}

func (c *CreateJobCommand) setDropoff(s string) error {
	addr, err := kernel.NewAddress(s)
	if err != nil {
		return err
	}
	c.dropoff = addr
	return nil
}
