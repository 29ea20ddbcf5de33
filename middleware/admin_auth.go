package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// APIKeyHeader is the header carrying the admin API key.
const APIKeyHeader = "x-api-key"

// RequireAPIKey guards the admin surface with a static shared secret. The
// comparison is constant-time and runs before any body parsing, so a bad key
// never reaches validation.
func RequireAPIKey(apiKey string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			provided := c.Request().Header.Get(APIKeyHeader)
			if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized: Missing or invalid API key",
				})
			}
			return next(c)
		}
	}
}
