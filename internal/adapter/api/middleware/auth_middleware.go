package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"gameclub/internal/infrastructure/auth"
)

type AuthMiddleware struct {
	tokens *auth.TokenManager
}

func NewAuthMiddleware(tokens *auth.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{
		tokens: tokens,
	}
}

// Authenticate requires a valid bearer token and stores the caller's
// identity on the request context under uid/email/name/role.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return err
		}

		claims, err := m.tokens.Verify(token)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
		}

		setIdentity(c, claims)
		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when a valid token is present
// and lets the request through anonymously otherwise. Guest checkout relies
// on this.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := bearerToken(c)
		if err != nil {
			return next(c)
		}

		if claims, err := m.tokens.Verify(token); err == nil {
			setIdentity(c, claims)
		}
		return next(c)
	}
}

func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
	}

	return parts[1], nil
}

func setIdentity(c echo.Context, claims *auth.Claims) {
	c.Set("uid", claims.Subject)
	c.Set("email", claims.Email)
	c.Set("name", claims.Name)
	c.Set("role", claims.Role)
}
