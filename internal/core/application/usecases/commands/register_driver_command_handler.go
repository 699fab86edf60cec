package commands

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// RegisterDriverCommandHandler creates an off-duty driver. One profile per account.
type RegisterDriverCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewRegisterDriverCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) RegisterDriverCommandHandler {
	return RegisterDriverCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RegisterDriverCommandHandler) Handle(ctx context.Context, cmd RegisterDriverCommand) (*driver.Driver, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	taken, err := driverRepo.ExistsByAccountID(ctx, cmd.AccountID())
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, errs.NewConflictError("driver", "account already has a driver profile")
	}

	d, err := driver.NewDriver(kernel.NewUUID(), cmd.AccountID(), cmd.Name(), cmd.Phone(), cmd.VehicleInfo(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	if err = driverRepo.Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
