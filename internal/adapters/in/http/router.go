package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"fleet/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const APIBasePath = "/api/v1"

var registerDocOnce sync.Once

// openAPIDoc serves the OpenAPI document to the swagger UI.
type openAPIDoc struct {
	body string
}

func (d openAPIDoc) ReadDoc() string {
	return d.body
}

// NewRouter wires the API routes, health check and docs UI into an echo instance.
// Every /api/v1 route requires a bearer token and passes OpenAPI validation.
func NewRouter(server *Server, auth *TokenAuthenticator, doc *openapi3.T, logger *slog.Logger) (*echo.Echo, error) {
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}

	body, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{body: string(body)})
	})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(requestLoggerConfig(logger)))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIBasePath, auth.Middleware(), validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}

func requestLoggerConfig(logger *slog.Logger) middleware.RequestLoggerConfig {
	return middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}
}
