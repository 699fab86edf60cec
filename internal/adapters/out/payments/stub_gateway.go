// Package payments holds payment gateway adapters.
package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

const DefaultCurrency = "usd"

// StubGateway settles every intent immediately. It stands in for a card provider in
// development and tests.
type StubGateway struct {
	currency string
	entropy  io.Reader
}

func NewStubGateway(currency string) *StubGateway {
	return NewStubGatewayWithEntropy(currency, rand.Reader)
}

// NewStubGatewayWithEntropy draws intent ids from entropy instead of crypto/rand.
func NewStubGatewayWithEntropy(currency string, entropy io.Reader) *StubGateway {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	return &StubGateway{currency: currency, entropy: entropy}
}

func (g *StubGateway) CreateIntent(ctx context.Context, req ports.PaymentIntentRequest) (ports.PaymentIntent, error) {
	if err := ctx.Err(); err != nil {
		return ports.PaymentIntent{}, err
	}
	if req.AmountCents <= 0 {
		return ports.PaymentIntent{}, errs.NewValueIsOutOfRangeError("amount", req.AmountCents, 1, "unbounded")
	}

	buf := make([]byte, 8)
	if _, err := io.ReadFull(g.entropy, buf); err != nil {
		return ports.PaymentIntent{}, fmt.Errorf("generate stub intent id: %w", err)
	}
	id := "stub_pi_" + hex.EncodeToString(buf)

	currency := g.currency
	if req.Currency != "" {
		currency = strings.ToLower(req.Currency)
	}

	return ports.PaymentIntent{
		ID:           id,
		ClientSecret: "stub_secret_" + id,
		AmountCents:  req.AmountCents,
		Currency:     currency,
		Mode:         ports.PaymentModeStub,
		Settled:      true,
	}, nil
}

// Currency is the currency used when a request does not name one.
func (g *StubGateway) Currency() string {
	return g.currency
}
