package http

import (
	"net/http"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/driver"
	"courier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// RegisterDriver handles POST /api/v1/drivers.
func (s *Server) RegisterDriver(ctx echo.Context) error {
	var req NewDriverRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	accountID, err := kernel.UUIDFromGoogle(req.AccountID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewRegisterDriverCommand(accountID, req.Name, req.Phone, req.VehicleInfo)
	if err != nil {
		return err
	}

	registered, err := s.h.RegisterDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, driverResponse(registered))
}

// UpdateDriverProfile handles PATCH /api/v1/drivers/{driver_id}.
func (s *Server) UpdateDriverProfile(ctx echo.Context) error {
	driverID, err := bindUUIDPathParam(ctx, "driver_id")
	if err != nil {
		return err
	}

	var req DriverProfileUpdateRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	update := driver.ProfileUpdate{
		Name:  req.Name,
		Phone: req.Phone,
	}
	if req.VehicleInfo.Set {
		update.VehicleInfo = req.VehicleInfo.Value
		update.ClearVehicleInfo = req.VehicleInfo.Value == nil
	}

	cmd, err := commands.NewUpdateDriverProfileCommand(driverID, update)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateDriverProfile.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, driverResponse(updated))
}

// UpdateDriverLocation handles PUT /api/v1/drivers/{driver_id}/location.
func (s *Server) UpdateDriverLocation(ctx echo.Context) error {
	driverID, err := bindUUIDPathParam(ctx, "driver_id")
	if err != nil {
		return err
	}

	var req LocationUpdateRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(driverID, req.Lat, req.Lng)
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateDriverLocation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, driverResponse(updated))
}

// ChangeDriverDuty handles PUT /api/v1/drivers/{driver_id}/duty.
func (s *Server) ChangeDriverDuty(ctx echo.Context) error {
	driverID, err := bindUUIDPathParam(ctx, "driver_id")
	if err != nil {
		return err
	}

	var req DutyChangeRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}
	duty, err := driver.ParseDuty(req.DutyStatus)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeDriverDutyCommand(driverID, duty)
	if err != nil {
		return err
	}

	updated, err := s.h.ChangeDriverDuty.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, driverResponse(updated))
}

// OptimizeRoute handles POST /api/v1/drivers/{driver_id}/optimize-route.
// The plan is a proposal; ApplyRoute stores it.
func (s *Server) OptimizeRoute(ctx echo.Context) error {
	driverID, err := bindUUIDPathParam(ctx, "driver_id")
	if err != nil {
		return err
	}

	var req OptimizeRouteRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	jobIDs := make([]kernel.UUID, 0, len(req.JobIDs))
	for _, raw := range req.JobIDs {
		id, err := kernel.UUIDFromGoogle(raw)
		if err != nil {
			return err
		}
		jobIDs = append(jobIDs, id)
	}

	query, err := queries.NewOptimizeRouteQuery(driverID, jobIDs)
	if err != nil {
		return err
	}

	plan, err := s.h.OptimizeRoute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, routePlanResponse(plan))
}

// ApplyRoute handles POST /api/v1/drivers/{driver_id}/apply-route.
func (s *Server) ApplyRoute(ctx echo.Context) error {
	driverID, err := bindUUIDPathParam(ctx, "driver_id")
	if err != nil {
		return err
	}

	var req ApplyRouteRequest
	if err := bindBody(ctx, &req); err != nil {
		return err
	}

	assignments := make([]commands.RouteAssignment, 0, len(req.Stops))
	for _, stop := range req.Stops {
		id, err := kernel.UUIDFromGoogle(stop.JobID)
		if err != nil {
			return err
		}
		assignments = append(assignments, commands.RouteAssignment{JobID: id, Sequence: stop.Sequence})
	}

	cmd, err := commands.NewApplyRouteCommand(driverID, assignments)
	if err != nil {
		return err
	}

	applied, err := s.h.ApplyRoute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ApplyRouteResponse{Applied: applied})
}
