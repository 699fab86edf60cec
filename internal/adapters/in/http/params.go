package http

import (
	"net/http"
	"time"

	"courier/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

func bindUUIDPathParam(ctx echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.UUID{}, badRequest("Invalid format for parameter %s: %s", name, err)
	}

	parsed, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, badRequest("Invalid format for parameter %s: %s", name, err)
	}
	return parsed, nil
}

// listJobsParams mirrors the query string of GET /jobs.
type listJobsParams struct {
	Status        *string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Skip          *int
	Limit         *int
}

func bindListJobsParams(ctx echo.Context) (listJobsParams, error) {
	var params listJobsParams
	query := ctx.QueryParams()

	if err := runtime.BindQueryParameter("form", true, false, "status", query, &params.Status); err != nil {
		return params, badRequest("Invalid format for parameter status: %s", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "created_after", query, &params.CreatedAfter); err != nil {
		return params, badRequest("Invalid format for parameter created_after: %s", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "created_before", query, &params.CreatedBefore); err != nil {
		return params, badRequest("Invalid format for parameter created_before: %s", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "skip", query, &params.Skip); err != nil {
		return params, badRequest("Invalid format for parameter skip: %s", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", query, &params.Limit); err != nil {
		return params, badRequest("Invalid format for parameter limit: %s", err)
	}
	return params, nil
}

func bindBody(ctx echo.Context, dst any) error {
	if err := ctx.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	return nil
}
