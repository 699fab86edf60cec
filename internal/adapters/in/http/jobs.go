package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/job"
	"courier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateJob handles POST /api/v1/jobs.
func (s *Server) CreateJob(ctx echo.Context) error {
	var req NewJobRequest
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

	cmd, err := commands.NewCreateJobCommand(customerID, req.PickupAddress, req.DropoffAddress, req.Price, req.Notes)
	if err != nil {
		return err
	}

	created, err := s.h.CreateJob.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, jobResponse(created))
}

// ListJobs handles GET /api/v1/jobs.
func (s *Server) ListJobs(ctx echo.Context) error {
	params, err := bindListJobsParams(ctx)
	if err != nil {
		return err
	}

	filter := queries.ListJobsFilter{
		CreatedAfter:  params.CreatedAfter,
		CreatedBefore: params.CreatedBefore,
	}
	if params.Status != nil {
		status, err := job.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		filter.Status = &status
	}

	skip, limit := 0, queries.DefaultListLimit
	if params.Skip != nil {
		skip = *params.Skip
	}
	if params.Limit != nil {
		limit = *params.Limit
	}

	query, err := queries.NewListJobsQuery(filter, skip, limit)
	if err != nil {
		return err
	}

	summaries, err := s.h.ListJobs.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	items := make([]JobResponse, len(summaries))
	for i, summary := range summaries {
		items[i] = jobSummaryResponse(summary)
	}
	return ctx.JSON(http.StatusOK, JobListResponse{Items: items, Skip: skip, Limit: limit})
}

// GetJob handles GET /api/v1/jobs/{job_id}.
func (s *Server) GetJob(ctx echo.Context) error {
	jobID, err := bindUUIDPathParam(ctx, "job_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetJobQuery(jobID)
	if err != nil {
		return err
	}

	found, err := s.h.GetJob.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	if err := s.ensureCustomer(ctx, found.CustomerID()); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, jobResponse(found))
}

// UpdateJobFields handles PATCH /api/v1/jobs/{job_id}.
func (s *Server) UpdateJobFields(ctx echo.Context) error {
	jobID, err := bindUUIDPathParam(ctx, "job_id")
	if err != nil {
		return err
	}

	var req JobFieldsUpdateRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	update := job.FieldsUpdate{}
	if req.PickupAddress != nil {
		addr, err := kernel.NewAddress(*req.PickupAddress)
		if err != nil {
			return err
		}
		update.Pickup = &addr
	}
	if req.DropoffAddress != nil {
		addr, err := kernel.NewAddress(*req.DropoffAddress)
		if err != nil {
			return err
		}
		update.Dropoff = &addr
	}
	if req.Price.Set {
		update.Price = req.Price.Value
		update.ClearPrice = req.Price.Value == nil
	}
	if req.Notes.Set {
		update.Notes = req.Notes.Value
		update.ClearNotes = req.Notes.Value == nil
	}

	cmd, err := commands.NewUpdateJobFieldsCommand(jobID, update)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateJobFields.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, jobResponse(updated))
}

// TransitionJobStatus handles POST /api/v1/jobs/{job_id}/status.
func (s *Server) TransitionJobStatus(ctx echo.Context) error {
	jobID, err := bindUUIDPathParam(ctx, "job_id")
	if err != nil {
		return err
	}

	var req StatusChangeRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	target, err := job.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionJobStatusCommand(jobID, target)
	if err != nil {
		return err
	}

	updated, err := s.h.TransitionJobStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, jobResponse(updated))
}

// AssignDriver handles POST /api/v1/jobs/{job_id}/assign.
func (s *Server) AssignDriver(ctx echo.Context) error {
	jobID, err := bindUUIDPathParam(ctx, "job_id")
	if err != nil {
		return err
	}

	var req AssignmentRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	driverID, err := kernel.UUIDFromGoogle(req.DriverID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAssignDriverCommand(jobID, driverID)
	if err != nil {
		return err
	}

	assigned, err := s.h.AssignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, jobResponse(assigned))
}

// CaptureProofOfDelivery handles POST /api/v1/jobs/{job_id}/pod.
func (s *Server) CaptureProofOfDelivery(ctx echo.Context) error {
	jobID, err := bindUUIDPathParam(ctx, "job_id")
	if err != nil {
		return err
	}

	var req NewProofOfDeliveryRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	var location *kernel.Location
	switch {
	case req.Lat != nil && req.Lng != nil:
		loc, err := kernel.NewLocation(*req.Lat, *req.Lng)
		if err != nil {
			return err
		}
		location = &loc
	case req.Lat != nil || req.Lng != nil:
		return badRequest("lat and lng must be given together")
	}

	cmd, err := commands.NewCaptureProofOfDeliveryCommand(jobID, req.RecipientName, req.SignatureRef, req.PhotoRefs, location)
	if err != nil {
		return err
	}

	proof, err := s.h.CaptureProofOfDelivery.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, proofResponse(proof))
}

// GetProofOfDelivery handles GET /api/v1/jobs/{job_id}/pod.
func (s *Server) GetProofOfDelivery(ctx echo.Context) error {
	jobID, err := bindUUIDPathParam(ctx, "job_id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetProofOfDeliveryQuery(jobID)
	if err != nil {
		return err
	}

	proof, err := s.h.GetProofOfDelivery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, proofResponse(proof))
}

// ensureCustomer stops a customer token from acting on another customer's data.
// Other roles, and requests without claims, pass.
func (s *Server) ensureCustomer(ctx echo.Context, customerID kernel.UUID) error {
	claims, ok := claimsFrom(ctx)
	if !ok || claims.Role != RoleCustomer {
		return nil
	}
	if claims.Subject != customerID.String() {
		return echo.NewHTTPError(http.StatusForbidden, "customers may only act on their own jobs")
	}
	return nil
}
