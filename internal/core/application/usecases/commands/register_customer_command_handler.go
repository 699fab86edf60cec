package commands

import (
	"context"

	"courier/internal/core/domain/model/customer"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
)

// RegisterCustomerCommandHandler stores a new customer. A taken email surfaces as the
// repository's Conflict.
type RegisterCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
	clock      ports.Clock
}

func NewRegisterCustomerCommandHandler(uowFactory CustomerUoWFactory, clock ports.Clock) RegisterCustomerCommandHandler {
	return RegisterCustomerCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RegisterCustomerCommandHandler) Handle(ctx context.Context, cmd RegisterCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c, err := customer.NewCustomer(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Phone(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
