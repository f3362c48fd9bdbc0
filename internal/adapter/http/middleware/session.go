package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// SessionIDHeader is the HTTP header carrying the itinerary session ID.
	SessionIDHeader = "X-Session-ID"
	// sessionIDKey is the context key for storing the session ID.
	sessionIDKey = "session_id"
)

// SessionID returns middleware that assigns every request an itinerary
// session. A client presenting X-Session-ID keeps its session; a client
// without one is issued a new UUID. The resolved ID is echoed back so
// first-time clients can persist it.
func SessionID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(SessionIDHeader)
			if sessionID == "" {
				sessionID = uuid.New().String()
			}

			c.Set(sessionIDKey, sessionID)
			c.Response().Header().Set(SessionIDHeader, sessionID)

			return next(c)
		}
	}
}

// GetSessionID retrieves the session ID from the echo context.
// Returns an empty string if no session ID is set.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(sessionIDKey).(string); ok {
		return id
	}
	return ""
}
