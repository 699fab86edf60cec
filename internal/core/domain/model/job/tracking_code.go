package job

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"courier/internal/pkg/errs"
)

const (
	// TrackingCodeLength is the number of characters in a tracking code.
	TrackingCodeLength = 12
	trackingAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// TrackingCode is the public, customer-facing job reference.
type TrackingCode string

// GenerateTrackingCode draws a code from crypto/rand.
func GenerateTrackingCode() (TrackingCode, error) {
	return GenerateTrackingCodeFrom(rand.Reader)
}

// GenerateTrackingCodeFrom draws every character uniformly from [A-Z0-9] using r.
func GenerateTrackingCodeFrom(r io.Reader) (TrackingCode, error) {
	alphabetSize := big.NewInt(int64(len(trackingAlphabet)))
	code := make([]byte, TrackingCodeLength)
	for i := range code {
		n, err := rand.Int(r, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("generate tracking code: %w", err)
		}
		code[i] = trackingAlphabet[n.Int64()]
	}
	return TrackingCode(code), nil
}

// ParseTrackingCode accepts exactly TrackingCodeLength characters from [A-Z0-9].
func ParseTrackingCode(s string) (TrackingCode, error) {
	if len(s) != TrackingCodeLength {
		return "", errs.NewValueIsInvalidErrorWithCause("tracking_code",
			fmt.Errorf("expected %d characters, got %d", TrackingCodeLength, len(s)))
	}
	for i := range len(s) {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return "", errs.NewValueIsInvalidErrorWithCause("tracking_code",
				fmt.Errorf("character %q at position %d is not in [A-Z0-9]", c, i))
		}
	}
	return TrackingCode(s), nil
}

func (c TrackingCode) String() string {
	return string(c)
}
