package job

import (
	"fmt"
	"slices"
	"strings"

	"courier/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery job.
//
// State transitions:
//
//	Pending ──> Assigned ──> PickedUp ──> InTransit ──┬──> Delivered
//	                                                  └──> Failed
//
// Delivered and Failed are terminal. The allowed moves live in one adjacency table
// (allowedTransitions); every check in the package reads from it.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota

	// Pending jobs wait for a driver.
	Pending

	// Assigned jobs have a driver but the parcel has not been collected.
	Assigned

	// PickedUp jobs have been collected at the pickup address.
	PickedUp

	// InTransit jobs are on their way to the dropoff address.
	InTransit

	// Delivered jobs reached the recipient.
	Delivered

	// Failed jobs could not be delivered.
	Failed
)

var statusNames = map[Status]string{
	Pending:   "pending",
	Assigned:  "assigned",
	PickedUp:  "picked_up",
	InTransit: "in_transit",
	Delivered: "delivered",
	Failed:    "failed",
}

var allowedTransitions = map[Status][]Status{
	Pending:   {Assigned},
	Assigned:  {PickedUp},
	PickedUp:  {InTransit},
	InTransit: {Delivered, Failed},
	Delivered: nil,
	Failed:    nil,
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Assigned, PickedUp, InTransit, Delivered, Failed}
}

// ParseStatus converts the wire name ("pending", "picked_up", ...) into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a job status", s))
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name, or "unknown" for invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// AllowedNext returns the statuses reachable in one step, sorted by name.
// Terminal statuses return an empty slice.
func (s Status) AllowedNext() []Status {
	next := slices.Clone(allowedTransitions[s])
	slices.SortFunc(next, func(a, b Status) int {
		return strings.Compare(a.String(), b.String())
	})
	return next
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(allowedTransitions[s]) == 0
}

// CanTransitionTo reports whether the adjacency table contains s -> target.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(allowedTransitions[s], target)
}

// IsActive reports whether the job sits on a driver's route: assigned or picked up.
func (s Status) IsActive() bool {
	return s == Assigned || s == PickedUp
}

// TransitionTo returns target when the move is allowed. Otherwise it returns a
// ConflictError naming the current status and the allowed next statuses.
//
// Example:
//
//	_, err := job.Delivered.TransitionTo(job.Pending)
//	// conflict: job status: Invalid status transition: 'delivered' -> 'pending'.
//	// Allowed from 'delivered': none (terminal state).
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewConflictError("job status", transitionMessage(s, target))
	}
	return target, nil
}

func transitionMessage(from Status, to Status) string {
	allowed := "none (terminal state)"
	if next := from.AllowedNext(); len(next) > 0 {
		quoted := make([]string, 0, len(next))
		for _, st := range next {
			quoted = append(quoted, "'"+st.String()+"'")
		}
		allowed = "[" + strings.Join(quoted, ", ") + "]"
	}
	return fmt.Sprintf("Invalid status transition: '%s' -> '%s'. Allowed from '%s': %s.",
		from, to, from, allowed)
}
