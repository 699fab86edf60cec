package commands

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/ports"
)

// UpdateDriverLocationCommandHandler stores the fix with the clock's time as its timestamp.
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) (*driver.Driver, error) {
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

	d, err := driverRepo.Get(ctx, cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = d.ReportLocation(cmd.Location(), h.clock.Now()); err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
