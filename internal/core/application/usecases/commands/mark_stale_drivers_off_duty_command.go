package commands

import (
	"errors"
	"time"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrMarkStaleDriversOffDutyCommandIsNotConstructed = errors.New(
	"MarkStaleDriversOffDutyCommand must be created via NewMarkStaleDriversOffDutyCommand constructor",
)

// MarkStaleDriversOffDutyCommand releases on-duty drivers that stopped reporting their
// location for longer than maxSilence. Issued by the scheduler.
type MarkStaleDriversOffDutyCommand struct { //nolint:recvcheck //using for validation
	maxSilence time.Duration

	guard guard.ConstructorGuard
}

func NewMarkStaleDriversOffDutyCommand(maxSilence time.Duration) (MarkStaleDriversOffDutyCommand, error) {
	if maxSilence <= 0 {
		return MarkStaleDriversOffDutyCommand{}, errs.NewValueIsOutOfRangeError("max silence", maxSilence, "1ns", "unbounded")
	}

	return MarkStaleDriversOffDutyCommand{
		maxSilence: maxSilence,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c MarkStaleDriversOffDutyCommand) Validate() error {
	return c.guard.Validate(ErrMarkStaleDriversOffDutyCommandIsNotConstructed)
}

func (c MarkStaleDriversOffDutyCommand) MaxSilence() time.Duration { return c.maxSilence }
