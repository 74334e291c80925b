package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleet/api"
	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/principal"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type mockCommand[C any] struct {
	mock.Mock
}

func (m *mockCommand[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type mockResult[I, R any] struct {
	mock.Mock
}

func (m *mockResult[I, R]) Handle(ctx context.Context, in I) (R, error) {
	args := m.Called(ctx, in)
	var result R
	if v := args.Get(0); v != nil {
		result = v.(R)
	}
	return result, args.Error(1)
}

type apiClient struct {
	t    *testing.T
	e    *echo.Echo
	auth *httpin.TokenAuthenticator
}

func newAPIClient(t *testing.T, useCases httpin.UseCases) *apiClient {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	doc, err := api.Load()
	require.NoError(t, err)
	auth, err := httpin.NewTokenAuthenticator(testSecret)
	require.NoError(t, err)

	e, err := httpin.NewRouter(httpin.NewServer(useCases, logger), auth, doc, logger)
	require.NoError(t, err)

	return &apiClient{t: t, e: e, auth: auth}
}

func (c *apiClient) adminToken() string {
	c.t.Helper()
	token, err := c.auth.Issue("admin", principal.RoleSuperAdmin, nil, time.Hour)
	require.NoError(c.t, err)
	return token
}

func (c *apiClient) clientToken(companyID kernel.UUID) string {
	c.t.Helper()
	token, err := c.auth.Issue("client", principal.RoleMSME, &companyID, time.Hour)
	require.NoError(c.t, err)
	return token
}

func (c *apiClient) do(method, path, token, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	c.e.ServeHTTP(rec, req)
	return rec
}

func (c *apiClient) get(path, token string) *httptest.ResponseRecorder {
	return c.do(http.MethodGet, path, token, "")
}

func (c *apiClient) post(path, token, body string) *httptest.ResponseRecorder {
	return c.do(http.MethodPost, path, token, body)
}
