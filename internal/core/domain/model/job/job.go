package job

import (
	"errors"
	"fmt"
	"math"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job did not come from NewJob or RestoreJob.
var ErrJobIsNotConstructed = errors.New("job must be created via NewJob or RestoreJob")

// Job is the aggregate root of a single pickup-and-dropoff delivery.
//
// Invariants:
//   - the tracking code is set once and never changes
//   - a driver is set exactly when the status is not Pending
//   - the price, when present, is non-negative with two decimals
//   - the route sequence, when present, is at least 1
//   - every mutation moves updatedAt to the supplied time
type Job struct {
	id               kernel.UUID
	trackingCode     TrackingCode
	status           Status
	customerID       kernel.UUID
	driverID         *kernel.UUID
	pickup           kernel.Address
	dropoff          kernel.Address
	price            *float64
	paymentStatus    PaymentStatus
	paymentReference *string
	notes            *string
	routeSequence    *int
	createdAt        time.Time
	updatedAt        time.Time

	isConstructed bool
}

// NewJob creates a pending, unpaid job without a driver.
//
// Parameters:
//   - id: identifier of the new job
//   - code: tracking code, already checked for uniqueness by the caller
//   - customerID: owning customer
//   - pickup, dropoff: validated addresses
//   - price: optional price, rounded to cents
//   - notes: optional free text
//   - now: creation time, also used as the first updatedAt
//
// Returns:
//   - *Job: the new aggregate
//   - error: every validation failure joined together
func NewJob(
	id kernel.UUID,
	code TrackingCode,
	customerID kernel.UUID,
	pickup kernel.Address,
	dropoff kernel.Address,
	price *float64,
	notes *string,
	now time.Time,
) (*Job, error) {
	j := &Job{
		status:        Pending,
		paymentStatus: PaymentUnpaid,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setTrackingCode(code),
		j.setCustomerID(customerID),
		j.setPickup(pickup),
		j.setDropoff(dropoff),
		j.setPrice(price),
	); err != nil {
		return nil, err
	}
	j.notes = notes

	return j, nil
}

// Snapshot carries every persisted field of a Job. Repositories fill it from storage and
// hand it to RestoreJob.
type Snapshot struct {
	ID               kernel.UUID
	TrackingCode     TrackingCode
	Status           Status
	CustomerID       kernel.UUID
	DriverID         *kernel.UUID
	Pickup           kernel.Address
	Dropoff          kernel.Address
	Price            *float64
	PaymentStatus    PaymentStatus
	PaymentReference *string
	Notes            *string
	RouteSequence    *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RestoreJob rebuilds a job from storage and re-checks its invariants.
func RestoreJob(s Snapshot) (*Job, error) {
	j := &Job{
		paymentReference: s.PaymentReference,
		notes:            s.Notes,
		createdAt:        s.CreatedAt,
		updatedAt:        s.UpdatedAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		j.setID(s.ID),
		j.setTrackingCode(s.TrackingCode),
		j.setCustomerID(s.CustomerID),
		j.setPickup(s.Pickup),
		j.setDropoff(s.Dropoff),
		j.setPrice(s.Price),
		j.setRouteSequence(s.RouteSequence),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
		validateDriverForStatus(s.Status, s.DriverID),
	); err != nil {
		return nil, err
	}
	j.status = s.Status
	j.paymentStatus = s.PaymentStatus
	j.driverID = s.DriverID

	return j, nil
}

// Validate returns ErrJobIsNotConstructed for nil or zero-value jobs.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares jobs by identifier.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *Job) ID() kernel.UUID              { return j.id }
func (j *Job) TrackingCode() TrackingCode   { return j.trackingCode }
func (j *Job) Status() Status               { return j.status }
func (j *Job) CustomerID() kernel.UUID      { return j.customerID }
func (j *Job) DriverID() *kernel.UUID       { return j.driverID }
func (j *Job) Pickup() kernel.Address       { return j.pickup }
func (j *Job) Dropoff() kernel.Address      { return j.dropoff }
func (j *Job) Price() *float64              { return j.price }
func (j *Job) PaymentStatus() PaymentStatus { return j.paymentStatus }
func (j *Job) PaymentReference() *string    { return j.paymentReference }
func (j *Job) Notes() *string               { return j.notes }
func (j *Job) RouteSequence() *int          { return j.routeSequence }
func (j *Job) CreatedAt() time.Time         { return j.createdAt }
func (j *Job) UpdatedAt() time.Time         { return j.updatedAt }

// IsAssignedTo reports whether driverID is the job's driver.
func (j *Job) IsAssignedTo(driverID kernel.UUID) bool {
	return j.driverID != nil && j.driverID.IsEqual(driverID)
}

// CheckAssignable returns the Conflict that AssignDriver would return, without mutating.
// Use cases call it before resolving the driver so the state check comes first.
func (j *Job) CheckAssignable() error {
	_, err := j.status.TransitionTo(Assigned)
	return err
}

// AssignDriver sets the driver and moves the job from Pending to Assigned in one step.
// Re-assigning an already assigned job is a Conflict.
func (j *Job) AssignDriver(driverID kernel.UUID, now time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	next, err := j.status.TransitionTo(Assigned)
	if err != nil {
		return err
	}

	j.status = next
	j.driverID = &driverID
	j.touch(now)
	return nil
}

// TransitionTo moves the job along the lifecycle. Assigned cannot be reached here
// because it needs a driver; AssignDriver is the only way in.
func (j *Job) TransitionTo(target Status, now time.Time) error {
	next, err := j.status.TransitionTo(target)
	if err != nil {
		return err
	}
	if next == Assigned {
		return errs.NewConflictError("job status",
			fmt.Sprintf("Status '%s' requires a driver; assign a driver to the job instead.", Assigned))
	}

	j.status = next
	j.touch(now)
	return nil
}

// FieldsUpdate lists the editable fields. Nil pointers leave a field unchanged;
// ClearPrice and ClearNotes remove the current value.
type FieldsUpdate struct {
	Pickup     *kernel.Address
	Dropoff    *kernel.Address
	Price      *float64
	ClearPrice bool
	Notes      *string
	ClearNotes bool
}

// UpdateFields edits addresses, price and notes. It is allowed in every status,
// terminal ones included.
func (j *Job) UpdateFields(u FieldsUpdate, now time.Time) error {
	updated := *j

	var errList []error
	if u.Pickup != nil {
		errList = append(errList, updated.setPickup(*u.Pickup))
	}
	if u.Dropoff != nil {
		errList = append(errList, updated.setDropoff(*u.Dropoff))
	}
	switch {
	case u.ClearPrice:
		updated.price = nil
	case u.Price != nil:
		errList = append(errList, updated.setPrice(u.Price))
	}
	switch {
	case u.ClearNotes:
		updated.notes = nil
	case u.Notes != nil:
		notes := *u.Notes
		updated.notes = &notes
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	*j = updated
	j.touch(now)
	return nil
}

// SetRouteSequence stores the job's position on its driver's route.
func (j *Job) SetRouteSequence(sequence int, now time.Time) error {
	if err := j.setRouteSequence(&sequence); err != nil {
		return err
	}
	j.touch(now)
	return nil
}

// StartPayment records the gateway intent and moves the payment to Pending.
func (j *Job) StartPayment(reference string, now time.Time) error {
	if err := j.checkPayable(); err != nil {
		return err
	}
	next, err := j.paymentStatus.TransitionTo(PaymentPending)
	if err != nil {
		return err
	}

	j.paymentStatus = next
	j.paymentReference = &reference
	j.touch(now)
	return nil
}

// MarkPaid settles the job. A reference replaces the stored one when non-empty.
func (j *Job) MarkPaid(reference string, now time.Time) error {
	next, err := j.paymentStatus.TransitionTo(PaymentPaid)
	if err != nil {
		return err
	}

	j.paymentStatus = next
	if reference != "" {
		j.paymentReference = &reference
	}
	j.touch(now)
	return nil
}

// MarkPaymentFailed records a failed settlement attempt. Recording the same failure
// twice is a no-op.
func (j *Job) MarkPaymentFailed(now time.Time) error {
	if j.paymentStatus == PaymentFailed {
		return nil
	}
	next, err := j.paymentStatus.TransitionTo(PaymentFailed)
	if err != nil {
		return err
	}

	j.paymentStatus = next
	j.touch(now)
	return nil
}

// CheckPayable reports why a payment cannot be started: a missing or zero price is a
// validation error, an already paid job is a Conflict.
func (j *Job) CheckPayable() error {
	return j.checkPayable()
}

func (j *Job) checkPayable() error {
	if j.price == nil || *j.price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", errors.New("job has no price set"))
	}
	if j.paymentStatus == PaymentPaid {
		return errs.NewConflictError("payment", "job is already paid")
	}
	return nil
}

// AmountCents returns the price in minor units, or 0 without a price.
func (j *Job) AmountCents() int64 {
	if j.price == nil {
		return 0
	}
	return int64(math.Round(*j.price * 100))
}

func (j *Job) touch(now time.Time) {
	j.updatedAt = now
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setTrackingCode(code TrackingCode) error {
	parsed, err := ParseTrackingCode(string(code))
	if err != nil {
		return err
	}
	j.trackingCode = parsed
	return nil
}

func (j *Job) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	j.customerID = id
	return nil
}

func (j *Job) setPickup(addr kernel.Address) error {
	validated, err := kernel.NewAddress(string(addr))
	if err != nil {
		return fmt.Errorf("pickup address: %w", err)
	}
	j.pickup = validated
	return nil
}

func (j *Job) setDropoff(addr kernel.Address) error {
	validated, err := kernel.NewAddress(string(addr))
	if err != nil {
		return fmt.Errorf("dropoff address: %w", err)
	}
	j.dropoff = validated
	return nil
}

func (j *Job) setPrice(price *float64) error {
	if price == nil {
		j.price = nil
		return nil
	}
	if math.IsNaN(*price) || math.IsInf(*price, 0) || *price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a non-negative amount", *price))
	}
	rounded := math.Round(*price*100) / 100
	j.price = &rounded
	return nil
}

func (j *Job) setRouteSequence(sequence *int) error {
	if sequence == nil {
		j.routeSequence = nil
		return nil
	}
	if *sequence < 1 {
		return errs.NewValueIsOutOfRangeError("route_sequence", *sequence, 1, "unbounded")
	}
	seq := *sequence
	j.routeSequence = &seq
	return nil
}

func validateDriverForStatus(status Status, driverID *kernel.UUID) error {
	if status == Pending && driverID != nil {
		return errs.NewValueIsInvalidErrorWithCause("driver_id", errors.New("pending job cannot have a driver"))
	}
	if status != Pending && status.Validate() == nil && driverID == nil {
		return errs.NewValueIsInvalidErrorWithCause("driver_id",
			fmt.Errorf("%s job must have a driver", status))
	}
	if driverID != nil {
		return driverID.Validate()
	}
	return nil
}
