package job

import (
	"fmt"
	"slices"

	"courier/internal/pkg/errs"
)

// PaymentStatus tracks settlement of a job's price.
//
//	Unpaid ──┬──> Pending ──┬──> Paid
//	         │              └──> Failed ──> Pending | Paid
//	         ├──> Paid
//	         └──> Failed
//
// A pending intent may be replaced by a new one (Pending -> Pending).
// Paid is terminal, so a second payment is rejected as a conflict.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentUnpaid
	PaymentPending
	PaymentPaid
	PaymentFailed
)

var paymentStatusNames = map[PaymentStatus]string{
	PaymentUnpaid:  "unpaid",
	PaymentPending: "pending",
	PaymentPaid:    "paid",
	PaymentFailed:  "failed",
}

var allowedPaymentTransitions = map[PaymentStatus][]PaymentStatus{
	PaymentUnpaid:  {PaymentPending, PaymentPaid, PaymentFailed},
	PaymentPending: {PaymentPending, PaymentPaid, PaymentFailed},
	PaymentFailed:  {PaymentPending, PaymentPaid},
	PaymentPaid:    nil,
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range paymentStatusNames {
		if name == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment_status",
		fmt.Errorf("%q is not a payment status", s))
}

func (s PaymentStatus) Validate() error {
	if _, ok := paymentStatusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment_status", fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

func (s PaymentStatus) String() string {
	if name, ok := paymentStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

// TransitionTo validates s -> target against the payment adjacency table.
func (s PaymentStatus) TransitionTo(target PaymentStatus) (PaymentStatus, error) {
	if err := target.Validate(); err != nil {
		return PaymentUnknown, err
	}
	if s == PaymentPaid {
		return PaymentUnknown, errs.NewConflictError("payment", "job is already paid")
	}
	if !slices.Contains(allowedPaymentTransitions[s], target) {
		return PaymentUnknown, errs.NewConflictError("payment",
			fmt.Sprintf("payment status cannot move from '%s' to '%s'", s, target))
	}
	return target, nil
}
