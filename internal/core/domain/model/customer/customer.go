// Package customer holds the customer entity. The dispatch core only checks that a
// customer exists before creating a job or a payment intent for it.
package customer

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("customer must be created via NewCustomer or RestoreCustomer")

type Customer struct {
	id        kernel.UUID
	name      string
	email     string
	phone     *string
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewCustomer validates the name and email. The email is stored lower-cased so the
// unique index catches case variants.
func NewCustomer(id kernel.UUID, name string, email string, phone *string, now time.Time) (*Customer, error) {
	return RestoreCustomer(id, name, email, phone, now)
}

func RestoreCustomer(id kernel.UUID, name string, email string, phone *string, createdAt time.Time) (*Customer, error) {
	c := &Customer{
		phone:     phone,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID      { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() string        { return c.email }
func (c *Customer) Phone() *string       { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a plain email address", email))
	}
	c.email = email
	return nil
}
