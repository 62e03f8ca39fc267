package middleware

import (
	"github.com/labstack/echo/v4"

	"farmintel/pkg/auth"
)

const sessionKey = "session"

// LoadSession reads the session cookie, if any, into the request context.
// It never rejects a request; guards decide what a missing session means.
func LoadSession(m *auth.Sessions) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if s, ok := m.Read(c.Request()); ok {
				c.Set(sessionKey, s)
			}
			return next(c)
		}
	}
}

// SessionFrom returns the session LoadSession stored on c.
func SessionFrom(c echo.Context) (auth.Session, bool) {
	s, ok := c.Get(sessionKey).(auth.Session)
	return s, ok && s.Authenticated
}

// UserID is the caller's id; only valid behind a guard.
func UserID(c echo.Context) uint {
	s, _ := SessionFrom(c)
	return s.UserID
}
