package commands

import (
	"errors"
	"strings"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/guard"
)

var ErrCaptureProofOfDeliveryCommandIsNotConstructed = errors.New(
	"CaptureProofOfDeliveryCommand must be created via NewCaptureProofOfDeliveryCommand constructor",
)

// CaptureProofOfDeliveryCommand records who received a parcel, with optional evidence.
type CaptureProofOfDeliveryCommand struct { //nolint:recvcheck //using for validation
	jobID        kernel.UUID
	recipient    string
	signatureRef *string
	photoRefs    []string
	location     *kernel.Location

	guard guard.ConstructorGuard
}

func NewCaptureProofOfDeliveryCommand(
	jobID kernel.UUID,
	recipient string,
	signatureRef *string,
	photoRefs []string,
	location *kernel.Location,
) (CaptureProofOfDeliveryCommand, error) {
	if err := jobID.Validate(); err != nil {
		return CaptureProofOfDeliveryCommand{}, err
	}
	if location != nil {
		if err := location.Validate(); err != nil {
			return CaptureProofOfDeliveryCommand{}, err
		}
	}

	cmd := CaptureProofOfDeliveryCommand{
		jobID:     jobID,
		recipient: strings.TrimSpace(recipient),
		photoRefs: append([]string(nil), photoRefs...),
		location:  location,
		guard:     guard.NewConstructorGuard(),
	}
	if signatureRef != nil && strings.TrimSpace(*signatureRef) != "" {
		ref := strings.TrimSpace(*signatureRef)
		cmd.signatureRef = &ref
	}

	return cmd, nil
}

func (c CaptureProofOfDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCaptureProofOfDeliveryCommandIsNotConstructed)
}

func (c CaptureProofOfDeliveryCommand) JobID() kernel.UUID    { return c.jobID }
func (c CaptureProofOfDeliveryCommand) Recipient() string     { return c.recipient }
func (c CaptureProofOfDeliveryCommand) SignatureRef() *string { return c.signatureRef }
func (c CaptureProofOfDeliveryCommand) PhotoRefs() []string {
	return append([]string(nil), c.photoRefs...)
}
func (c CaptureProofOfDeliveryCommand) Location() *kernel.Location { return c.location }
