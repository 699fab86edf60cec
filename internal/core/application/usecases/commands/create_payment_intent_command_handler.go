package commands

import (
	"context"
	"fmt"

	"courier/internal/core/domain/model/job"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"
)

// PaymentIntentResult is what the customer needs to finish the payment client side.
type PaymentIntentResult struct {
	Job          *job.Job
	ClientSecret string
	AmountCents  int64
	Currency     string
	Mode         ports.PaymentMode
}

// CreatePaymentIntentCommandHandler asks the payment gateway for an intent.
//
// A job owned by another customer is reported as NotFound so its existence does not leak.
// Settled intents (the stub gateway) mark the job paid at once; others leave it pending
// until RecordPaymentOutcome receives the gateway's verdict.
type CreatePaymentIntentCommandHandler struct {
	uowFactory UoWFactory
	gateway    ports.PaymentGateway
	clock      ports.Clock
	currency   string
}

func NewCreatePaymentIntentCommandHandler(
	uowFactory UoWFactory,
	gateway ports.PaymentGateway,
	clock ports.Clock,
	currency string,
) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		clock:      clock,
		currency:   currency,
	}
}

func (h CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentIntentCommand,
) (PaymentIntentResult, error) {
	if err := cmd.Validate(); err != nil {
		return PaymentIntentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PaymentIntentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	j, err := jobRepo.GetForUpdate(ctx, cmd.JobID())
	if err != nil {
		return PaymentIntentResult{}, err
	}
	if !j.CustomerID().IsEqual(cmd.CustomerID()) {
		return PaymentIntentResult{}, errs.NewObjectNotFoundError("job", cmd.JobID().String())
	}
	if err = j.CheckPayable(); err != nil {
		return PaymentIntentResult{}, err
	}

	intent, err := h.gateway.CreateIntent(ctx, ports.PaymentIntentRequest{
		JobID:       j.ID(),
		CustomerID:  j.CustomerID(),
		AmountCents: j.AmountCents(),
		Currency:    h.currency,
	})
	if err != nil {
		return PaymentIntentResult{}, fmt.Errorf("create payment intent: %w", err)
	}

	now := h.clock.Now()
	if intent.Settled {
		err = j.MarkPaid(intent.ID, now)
	} else {
		err = j.StartPayment(intent.ID, now)
	}
	if err != nil {
		return PaymentIntentResult{}, err
	}

	if err = jobRepo.Update(ctx, j); err != nil {
		return PaymentIntentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return PaymentIntentResult{}, err
	}

	return PaymentIntentResult{
		Job:          j,
		ClientSecret: intent.ClientSecret,
		AmountCents:  intent.AmountCents,
		Currency:     intent.Currency,
		Mode:         intent.Mode,
	}, nil
}
