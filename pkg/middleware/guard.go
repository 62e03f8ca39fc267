package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmintel/pkg/auth"
)

// RequireRole lets the request through only for a session holding role.
// Anyone else is redirected to that role's login page.
func RequireRole(role auth.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := SessionFrom(c)
			if !ok || s.Role != role {
				return c.Redirect(http.StatusFound, role.LoginPath())
			}
			return next(c)
		}
	}
}

func RequireFarmer() echo.MiddlewareFunc { return RequireRole(auth.RoleFarmer) }

func RequireAdmin() echo.MiddlewareFunc { return RequireRole(auth.RoleAdmin) }
