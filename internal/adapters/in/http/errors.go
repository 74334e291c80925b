package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fleet/internal/generated/servers"
	"fleet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	kindInvalid          = "Invalid"
	kindInvalidGeometry  = "InvalidGeometry"
	kindNotFound         = "NotFound"
	kindConflict         = "Conflict"
	kindInvalidState     = "InvalidState"
	kindCapacityExceeded = "CapacityExceeded"
	kindForbidden        = "Forbidden"
	kindUnauthorized     = "Unauthorized"
	kindInternal         = "Internal"
)

// classify maps an error to its HTTP status and error kind. Framework errors
// keep their own status.
func classify(err error) (int, string) {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code, kindOfStatus(httpErr.Code)
	case errors.Is(err, errs.ErrInvalidGeometry):
		return http.StatusUnprocessableEntity, kindInvalidGeometry
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, kindInvalid
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, kindNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden, kindForbidden
	case errors.Is(err, errs.ErrCapacityExceeded):
		return http.StatusConflict, kindCapacityExceeded
	case errors.Is(err, errs.ErrInvalidState):
		return http.StatusConflict, kindInvalidState
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict, kindConflict
	default:
		return http.StatusInternalServerError, kindInternal
	}
}

func kindOfStatus(code int) string {
	switch code {
	case http.StatusBadRequest:
		return kindInvalid
	case http.StatusUnauthorized:
		return kindUnauthorized
	case http.StatusForbidden:
		return kindForbidden
	case http.StatusNotFound:
		return kindNotFound
	case http.StatusConflict:
		return kindConflict
	case http.StatusInternalServerError:
		return kindInternal
	default:
		return http.StatusText(code)
	}
}

func errorBody(err error, logger *slog.Logger, ctx echo.Context) servers.Error {
	status, kind := classify(err)

	message := err.Error()
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message = fmt.Sprint(httpErr.Message)
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		message = http.StatusText(status)
	}

	return servers.Error{
		Code:    status,
		Kind:    kind,
		Message: message,
	}
}

func (s *Server) problem(ctx echo.Context, err error) error {
	body := errorBody(err, s.logger, ctx)
	return ctx.JSON(body.Code, body)
}

// NewErrorHandler renders errors that escape handlers, such as routing,
// authentication and request validation failures, in the API error format.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := errorBody(err, logger, ctx)
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(body.Code)
		} else {
			err = ctx.JSON(body.Code, body)
		}
		if err != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", err)
		}
	}
}
