package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fleet/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

// NewRequestValidator checks path parameters and request bodies against the
// OpenAPI document before the request reaches a handler. Authentication is
// left to the token middleware.
func NewRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, findErr := router.FindRoute(req)
			if findErr != nil {
				if errors.Is(findErr, routers.ErrMethodNotAllowed) {
					return echo.NewHTTPError(http.StatusMethodNotAllowed, findErr.Error())
				}
				return echo.NewHTTPError(http.StatusNotFound, findErr.Error())
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if validateErr := openapi3filter.ValidateRequest(req.Context(), input); validateErr != nil {
				return errs.NewValueIsInvalidErrorWithCause("request", errors.New(validationReason(validateErr)))
			}

			return next(ctx)
		}
	}, nil
}

// validationReason keeps where and why a request failed validation and drops
// the schema and value dump kin-openapi appends to its errors.
func validationReason(err error) string {
	reason := "request does not match the API schema"

	var requestErr *openapi3filter.RequestError
	hasRequestErr := errors.As(err, &requestErr)

	var schemaErr *openapi3.SchemaError
	switch {
	case errors.As(err, &schemaErr) && schemaErr.Reason != "":
		reason = schemaErr.Reason
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			reason = fmt.Sprintf("/%s: %s", strings.Join(pointer, "/"), reason)
		}
	case hasRequestErr && requestErr.Reason != "":
		reason = requestErr.Reason
	}

	if hasRequestErr && requestErr.Parameter != nil {
		return fmt.Sprintf("parameter %q in %s: %s", requestErr.Parameter.Name, requestErr.Parameter.In, reason)
	}
	return reason
}
