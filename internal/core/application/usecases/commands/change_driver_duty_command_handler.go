package commands

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/ports"
)

type ChangeDriverDutyCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewChangeDriverDutyCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) ChangeDriverDutyCommandHandler {
	return ChangeDriverDutyCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h ChangeDriverDutyCommandHandler) Handle(ctx context.Context, cmd ChangeDriverDutyCommand) (*driver.Driver, error) {
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

	if err = d.ChangeDuty(cmd.Duty(), h.clock.Now()); err != nil {
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
