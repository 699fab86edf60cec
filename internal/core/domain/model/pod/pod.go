// Package pod models the proof of delivery captured by a driver at the dropoff address.
// A proof is immutable once captured and each job has at most one.
package pod

import (
	"errors"
	"slices"
	"strings"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

var (
	ErrRecipientIsRequired   = errs.NewValueIsRequiredError("recipient_name")
	ErrProofIsNotConstructed = errors.New("proof of delivery must be created via NewProofOfDelivery")
)

type ProofOfDelivery struct {
	id           kernel.UUID
	jobID        kernel.UUID
	recipient    string
	signatureRef *string
	photoRefs    []string
	deliveredAt  time.Time
	location     *kernel.Location
	guard        guard.ConstructorGuard
}

// NewProofOfDelivery records who received the parcel and when.
//
// Parameters:
//   - id: identifier of the proof
//   - jobID: delivered job
//   - recipient: name of the person who took the parcel (required)
//   - signatureRef: optional reference to a stored signature image
//   - photoRefs: optional references to stored photos, blanks are dropped
//   - deliveredAt: capture time
//   - location: optional GPS fix of the handover
func NewProofOfDelivery(
	id kernel.UUID,
	jobID kernel.UUID,
	recipient string,
	signatureRef *string,
	photoRefs []string,
	deliveredAt time.Time,
	location *kernel.Location,
) (*ProofOfDelivery, error) {
	p := &ProofOfDelivery{
		signatureRef: signatureRef,
		deliveredAt:  deliveredAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setJobID(jobID),
		p.setRecipient(recipient),
		p.setLocation(location),
	); err != nil {
		return nil, err
	}
	for _, ref := range photoRefs {
		if ref = strings.TrimSpace(ref); ref != "" {
			p.photoRefs = append(p.photoRefs, ref)
		}
	}

	return p, nil
}

func (p *ProofOfDelivery) Validate() error {
	if p == nil {
		return ErrProofIsNotConstructed
	}
	return p.guard.Validate(ErrProofIsNotConstructed)
}

func (p *ProofOfDelivery) ID() kernel.UUID            { return p.id }
func (p *ProofOfDelivery) JobID() kernel.UUID         { return p.jobID }
func (p *ProofOfDelivery) Recipient() string          { return p.recipient }
func (p *ProofOfDelivery) SignatureRef() *string      { return p.signatureRef }
func (p *ProofOfDelivery) PhotoRefs() []string        { return slices.Clone(p.photoRefs) }
func (p *ProofOfDelivery) DeliveredAt() time.Time     { return p.deliveredAt }
func (p *ProofOfDelivery) Location() *kernel.Location { return p.location }

func (p *ProofOfDelivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *ProofOfDelivery) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("job_id", err)
	}
	p.jobID = id
	return nil
}

func (p *ProofOfDelivery) setRecipient(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrRecipientIsRequired
	}
	p.recipient = name
	return nil
}

func (p *ProofOfDelivery) setLocation(loc *kernel.Location) error {
	if loc == nil {
		return nil
	}
	if err := loc.Validate(); err != nil {
		return err
	}
	l := *loc
	p.location = &l
	return nil
}
