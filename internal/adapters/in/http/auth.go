package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/principal"
	"fleet/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const principalContextKey = "principal"

var ErrEmptyTokenSecret = errors.New("token secret must not be empty")

// Claims is the payload of a fleet bearer token.
type Claims struct {
	Role      string `json:"role"`
	CompanyID string `json:"company_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenAuthenticator issues and verifies HS256 bearer tokens and turns them
// into principals.
type TokenAuthenticator struct {
	secret []byte
	now    func() time.Time
}

func NewTokenAuthenticator(secret string) (*TokenAuthenticator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptyTokenSecret
	}
	return &TokenAuthenticator{
		secret: []byte(secret),
		now:    time.Now,
	}, nil
}

// Issue mints a token for the given identity. The identity is checked with
// the same rules Authenticate applies.
func (a *TokenAuthenticator) Issue(
	subject string,
	role principal.Role,
	companyID *kernel.UUID,
	ttl time.Duration,
) (string, error) {
	if _, err := principal.NewPrincipal(subject, role, companyID); err != nil {
		return "", err
	}
	if ttl <= 0 {
		return "", errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	now := a.now()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if companyID != nil {
		claims.CompanyID = companyID.String()
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// Authenticate verifies the token signature and expiry and builds the principal it describes.
func (a *TokenAuthenticator) Authenticate(token string) (principal.Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
	)
	if err != nil {
		return principal.Principal{}, err
	}

	role, err := principal.ParseRole(claims.Role)
	if err != nil {
		return principal.Principal{}, err
	}

	var companyID *kernel.UUID
	if claims.CompanyID != "" {
		id, parseErr := kernel.UUIDFromString(claims.CompanyID)
		if parseErr != nil {
			return principal.Principal{}, fmt.Errorf("company_id claim: %w", parseErr)
		}
		companyID = &id
	}

	return principal.NewPrincipal(claims.Subject, role, companyID)
}

// Middleware rejects requests without a valid bearer token and attaches the
// caller's principal to the echo context.
func (a *TokenAuthenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			caller, err := a.Authenticate(strings.TrimSpace(token))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token").SetInternal(err)
			}

			ctx.Set(principalContextKey, caller)
			return next(ctx)
		}
	}
}

func principalFrom(ctx echo.Context) (principal.Principal, error) {
	caller, ok := ctx.Get(principalContextKey).(principal.Principal)
	if !ok {
		return principal.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "no authenticated principal")
	}
	return caller, nil
}

func requireAdmin(ctx echo.Context, action string) (principal.Principal, error) {
	caller, err := principalFrom(ctx)
	if err != nil {
		return principal.Principal{}, err
	}
	if !caller.IsAdmin() {
		return principal.Principal{}, errs.NewForbiddenError(action)
	}
	return caller, nil
}
