package http

import (
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	RoleDispatcher = "dispatcher"
	RoleDriver     = "driver"
	RoleCustomer   = "customer"
)

const claimsContextKey = "auth.claims"

// Claims are the bearer token claims the API reads. Subject holds the caller's account id.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens. With an empty secret every request passes
// unauthenticated, which is how local development runs.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) Enabled() bool {
	return len(a.secret) > 0
}

func (a *Authenticator) parse(header string) (*Claims, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, errors.New("missing bearer token")
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid bearer token: %w", err)
	}
	return claims, nil
}

// Require admits callers holding one of roles.
func (a *Authenticator) Require(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !a.Enabled() {
			return next
		}
		return func(ctx echo.Context) error {
			claims, err := a.parse(ctx.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
			}
			if !slices.Contains(roles, claims.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "role is not allowed to perform this action")
			}
			ctx.Set(claimsContextKey, claims)
			return next(ctx)
		}
	}
}

func claimsFrom(ctx echo.Context) (*Claims, bool) {
	claims, ok := ctx.Get(claimsContextKey).(*Claims)
	return claims, ok
}
