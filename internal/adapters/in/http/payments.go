package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreatePaymentIntent handles POST /api/v1/jobs/{job_id}/payment-intent.
func (s *Server) CreatePaymentIntent(ctx echo.Context) error {
	jobID, err := bindUUIDPathParam(ctx, "job_id")
	if err != nil {
		return err
	}

	var req PaymentIntentRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	customerID, err := kernel.UUIDFromGoogle(req.CustomerID)
	if err != nil {
		return err
	}
	if err := s.ensureCustomer(ctx, customerID); err != nil {
		return err
	}

	cmd, err := commands.NewCreatePaymentIntentCommand(customerID, jobID)
	if err != nil {
		return err
	}

	result, err := s.h.CreatePaymentIntent.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, paymentIntentResponse(result))
}

// RecordPaymentEvent handles POST /api/v1/payments/events, the gateway's notification
// that an intent succeeded or failed.
func (s *Server) RecordPaymentEvent(ctx echo.Context) error {
	var req PaymentEventRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	var succeeded bool
	switch req.Type {
	case paymentEventSucceeded:
		succeeded = true
	case paymentEventFailed:
		succeeded = false
	default:
		return badRequest("unsupported payment event type %q", req.Type)
	}

	jobID, err := kernel.UUIDFromGoogle(req.JobID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRecordPaymentOutcomeCommand(jobID, succeeded, req.PaymentIntentID)
	if err != nil {
		return err
	}

	updated, err := s.h.RecordPaymentOutcome.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, jobResponse(updated))
}
