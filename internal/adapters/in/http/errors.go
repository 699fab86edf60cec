package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"courier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error is the body of every failed response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// errorResponse classifies err into a status code and a client-facing message.
// Unknown errors become 500 without leaking their text.
func errorResponse(err error) Error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			msg = fmt.Sprint(httpErr.Message)
		}
		return Error{Code: httpErr.Code, Message: msg}
	}

	switch {
	case errs.IsNotFound(err):
		return Error{Code: http.StatusNotFound, Message: err.Error()}
	case errs.IsConflict(err):
		var conflict *errs.ConflictError
		if errors.As(err, &conflict) && conflict.Reason != "" {
			return Error{Code: http.StatusConflict, Message: conflict.Reason}
		}
		return Error{Code: http.StatusConflict, Message: err.Error()}
	case errs.IsValidation(err):
		return Error{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	default:
		return Error{Code: http.StatusInternalServerError, Message: "internal server error"}
	}
}

// NewErrorHandler returns the echo error handler that renders Error bodies.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		resp := errorResponse(err)
		if resp.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(resp.Code)
		} else {
			writeErr = ctx.JSON(resp.Code, resp)
		}
		if writeErr != nil {
			logger.Error("write error response", "error", writeErr)
		}
	}
}

func badRequest(format string, args ...any) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf(format, args...))
}
