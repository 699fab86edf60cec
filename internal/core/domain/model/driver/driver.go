package driver

import (
	"errors"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrPhoneIsRequired        = errs.NewValueIsRequiredError("phone")
	ErrAccountIDIsRequired    = errs.NewValueIsRequiredError("account_id")
	ErrDriverIsNotConstructed = errors.New("driver must be created via NewDriver or RestoreDriver")
)

// Driver is a courier who can be assigned jobs. It owns its duty status and the last
// position reported by the driver's device.
type Driver struct {
	id             kernel.UUID
	accountID      kernel.UUID
	name           string
	phone          string
	vehicleInfo    *string
	duty           Duty
	lastLocation   *kernel.Location
	lastLocationAt *time.Time
	createdAt      time.Time
	updatedAt      time.Time
	guard          guard.ConstructorGuard
}

// NewDriver registers an off-duty driver with no known location.
//
// Parameters:
//   - id: identifier of the driver profile
//   - accountID: identity-provider account the profile belongs to, unique per driver
//   - name, phone: required contact details
//   - vehicleInfo: optional free text such as "white Ford Transit, AB12 CDE"
//   - now: creation time
func NewDriver(
	id kernel.UUID,
	accountID kernel.UUID,
	name string,
	phone string,
	vehicleInfo *string,
	now time.Time,
) (*Driver, error) {
	d := &Driver{
		duty:      OffDuty,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setAccountID(accountID),
		d.setName(name),
		d.setPhone(phone),
	); err != nil {
		return nil, err
	}
	d.vehicleInfo = vehicleInfo

	return d, nil
}

// Snapshot is the persisted form of a Driver.
type Snapshot struct {
	ID             kernel.UUID
	AccountID      kernel.UUID
	Name           string
	Phone          string
	VehicleInfo    *string
	Duty           Duty
	LastLocation   *kernel.Location
	LastLocationAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func RestoreDriver(s Snapshot) (*Driver, error) {
	d := &Driver{
		vehicleInfo:    s.VehicleInfo,
		lastLocation:   s.LastLocation,
		lastLocationAt: s.LastLocationAt,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setAccountID(s.AccountID),
		d.setName(s.Name),
		d.setPhone(s.Phone),
		d.setDuty(s.Duty),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Driver) ID() kernel.UUID { return d.id }

func (d *Driver) AccountID() kernel.UUID { return d.accountID }

func (d *Driver) Name() string { return d.name }

func (d *Driver) Phone() string { return d.phone }

func (d *Driver) VehicleInfo() *string { return d.vehicleInfo }

func (d *Driver) Duty() Duty { return d.duty }

// LastLocation returns the last reported position, or nil before the first report.
func (d *Driver) LastLocation() *kernel.Location { return d.lastLocation }

func (d *Driver) LastLocationAt() *time.Time { return d.lastLocationAt }

func (d *Driver) CreatedAt() time.Time { return d.createdAt }

func (d *Driver) UpdatedAt() time.Time { return d.updatedAt }

// ProfileUpdate holds the editable contact fields; nil leaves a field unchanged.
type ProfileUpdate struct {
	Name             *string
	Phone            *string
	VehicleInfo      *string
	ClearVehicleInfo bool
}

func (d *Driver) UpdateProfile(u ProfileUpdate, now time.Time) error {
	updated := *d

	var errList []error
	if u.Name != nil {
		errList = append(errList, updated.setName(*u.Name))
	}
	if u.Phone != nil {
		errList = append(errList, updated.setPhone(*u.Phone))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	switch {
	case u.ClearVehicleInfo:
		updated.vehicleInfo = nil
	case u.VehicleInfo != nil:
		info := *u.VehicleInfo
		updated.vehicleInfo = &info
	}

	*d = updated
	d.updatedAt = now
	return nil
}

// ReportLocation stores a GPS fix and its time.
func (d *Driver) ReportLocation(loc kernel.Location, now time.Time) error {
	if err := loc.Validate(); err != nil {
		return err
	}

	at := now
	d.lastLocation = &loc
	d.lastLocationAt = &at
	d.updatedAt = now
	return nil
}

// ChangeDuty switches the duty status. Setting the current value again is a no-op
// that still reports success.
func (d *Driver) ChangeDuty(duty Duty, now time.Time) error {
	if err := duty.Validate(); err != nil {
		return err
	}
	if d.duty == duty {
		return nil
	}

	d.duty = duty
	d.updatedAt = now
	return nil
}

// IsStale reports whether an on-duty driver has not reported a location for longer than
// maxSilence. Drivers that never reported count from the moment they were created.
func (d *Driver) IsStale(now time.Time, maxSilence time.Duration) bool {
	if d.duty != OnDuty {
		return false
	}
	last := d.createdAt
	if d.lastLocationAt != nil {
		last = *d.lastLocationAt
	}
	return now.Sub(last) > maxSilence
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return ErrAccountIDIsRequired
	}
	d.accountID = id
	return nil
}

func (d *Driver) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Driver) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	d.phone = phone
	return nil
}

func (d *Driver) setDuty(duty Duty) error {
	if err := duty.Validate(); err != nil {
		return err
	}
	d.duty = duty
	return nil
}
