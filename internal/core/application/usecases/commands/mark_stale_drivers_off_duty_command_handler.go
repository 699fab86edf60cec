package commands

import (
	"context"

	"courier/internal/core/domain/model/driver"
	"courier/internal/core/ports"
)

// MarkStaleDriversOffDutyCommandHandler moves silent drivers off duty in one transaction
// and returns how many were changed.
type MarkStaleDriversOffDutyCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewMarkStaleDriversOffDutyCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) MarkStaleDriversOffDutyCommandHandler {
	return MarkStaleDriversOffDutyCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h MarkStaleDriversOffDutyCommandHandler) Handle(ctx context.Context, cmd MarkStaleDriversOffDutyCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	now := h.clock.Now()

	stale, err := driverRepo.FindOnDutySilentSince(ctx, now.Add(-cmd.MaxSilence()))
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	released := 0
	for _, d := range stale {
		if !d.IsStale(now, cmd.MaxSilence()) {
			continue
		}
		if err = d.ChangeDuty(driver.OffDuty, now); err != nil {
			return 0, err
		}
		if err = driverRepo.Update(ctx, d); err != nil {
			return 0, err
		}
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
