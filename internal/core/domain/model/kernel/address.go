package kernel

import (
	"strings"
	"unicode/utf8"

	"courier/internal/pkg/errs"
)

// AddressMaxLength is the longest accepted street address, in characters.
const AddressMaxLength = 500

// Address is a free-form street address as typed by a dispatcher.
type Address string

// NewAddress trims surrounding whitespace and checks the length is within 1..AddressMaxLength.
func NewAddress(s string) (Address, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", errs.NewValueIsRequiredError("address")
	}
	if n := utf8.RuneCountInString(trimmed); n > AddressMaxLength {
		return "", errs.NewValueIsOutOfRangeError("address length", n, 1, AddressMaxLength)
	}
	return Address(trimmed), nil
}

func (a Address) String() string {
	return string(a)
}
