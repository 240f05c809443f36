// Package middleware contains the HTTP middleware of the delivery layer.
package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionKeyHeader carries the opaque session key between the browser and
// this service. The key is the only session credential; there is no login.
const SessionKeyHeader = "X-Session-Key"

const sessionKeyContextKey = "session_key"

// SessionMiddleware resolves the session key for every request.
type SessionMiddleware struct{}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Resolve reads the session key header, minting a fresh key on first touch.
// The effective key is always echoed back so the client can persist it.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(SessionKeyHeader)

		var key uuid.UUID
		if raw == "" {
			key = uuid.New()
		} else {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid session key format"})
			}
			key = parsed
		}

		c.Set(sessionKeyContextKey, key)
		c.Response().Header().Set(SessionKeyHeader, key.String())

		return next(c)
	}
}

// GetSessionKey extracts the session key placed in the context by Resolve.
func GetSessionKey(c echo.Context) (uuid.UUID, bool) {
	key, ok := c.Get(sessionKeyContextKey).(uuid.UUID)

	return key, ok
}
