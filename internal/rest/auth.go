package rest

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const basicScheme = "Basic "

// adminAuth gates mutating routes behind the single shared admin credential,
// transported as HTTP Basic auth. It is a binary allow/deny: an absent,
// malformed or mismatching credential yields 401 and no identity is attached
// to the request on success.
func (h *PostHandler) adminAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(auth, basicScheme) {
				return h.unauthorized(c, "authentication required")
			}

			decoded, err := base64.StdEncoding.DecodeString(auth[len(basicScheme):])
			if err != nil {
				return h.unauthorized(c, "invalid authentication format")
			}

			username, password, ok := strings.Cut(string(decoded), ":")
			if !ok {
				return h.unauthorized(c, "invalid authentication format")
			}

			userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.cfg.AdminUsername)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) == 1
			if !userOK || !passOK {
				return h.unauthorized(c, "invalid credentials")
			}

			return next(c)
		}
	}
}

func (h *PostHandler) unauthorized(c echo.Context, message string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, `Basic realm="admin"`)
	return c.JSON(http.StatusUnauthorized, map[string]string{"message": message})
}
