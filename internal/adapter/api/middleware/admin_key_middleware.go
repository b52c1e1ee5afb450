package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminKeyMiddleware gates the back-office routes behind a shared static key
// sent in the x-admin-key header.
type AdminKeyMiddleware struct {
	key string
}

func NewAdminKeyMiddleware(key string) *AdminKeyMiddleware {
	return &AdminKeyMiddleware{
		key: key,
	}
}

func (m *AdminKeyMiddleware) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.key == "" {
			return echo.NewHTTPError(http.StatusInternalServerError, "Admin API key is not configured")
		}

		provided := c.Request().Header.Get("x-admin-key")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.key)) != 1 {
			return echo.NewHTTPError(http.StatusUnauthorized, "Invalid admin key")
		}

		return next(c)
	}
}
