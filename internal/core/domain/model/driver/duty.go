package driver

import (
	"fmt"

	"courier/internal/pkg/errs"
)

// Duty tells dispatchers whether a driver is taking work.
type Duty int

const (
	DutyUnknown Duty = iota
	OffDuty
	OnDuty
)

var dutyNames = map[Duty]string{
	OffDuty: "off_duty",
	OnDuty:  "on_duty",
}

func ParseDuty(s string) (Duty, error) {
	for d, name := range dutyNames {
		if name == s {
			return d, nil
		}
	}
	return DutyUnknown, errs.NewValueIsInvalidErrorWithCause("duty", fmt.Errorf("%q is not a duty status", s))
}

func (d Duty) Validate() error {
	if _, ok := dutyNames[d]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("duty", fmt.Errorf("%d is not a valid duty status", d))
	}
	return nil
}

func (d Duty) String() string {
	if name, ok := dutyNames[d]; ok {
		return name
	}
	return "unknown"
}
