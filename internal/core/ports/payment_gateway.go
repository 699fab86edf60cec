package ports

import (
	"context"

	"courier/internal/core/domain/model/kernel"
)

// PaymentMode tells the client how the intent was created.
type PaymentMode string

const (
	// PaymentModeStub intents are settled immediately without a provider.
	PaymentModeStub PaymentMode = "stub"
	// PaymentModeLive intents are settled later through the provider webhook.
	PaymentModeLive PaymentMode = "live"
)

// PaymentIntentRequest is what the core asks the gateway to charge.
type PaymentIntentRequest struct {
	JobID       kernel.UUID
	CustomerID  kernel.UUID
	AmountCents int64
	Currency    string
}

// PaymentIntent is the gateway's answer. Settled intents need no webhook.
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountCents  int64
	Currency     string
	Mode         PaymentMode
	Settled      bool
}

// PaymentGateway is the narrow port to the payment provider.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, req PaymentIntentRequest) (PaymentIntent, error)
}
