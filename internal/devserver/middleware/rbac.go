package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gadgetstore/storefront/internal/core/domain"
)

// RequireRoles enforces role-based access control over the injected claims.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[domain.Role(role)]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// RequireProductManager shortcuts the roles allowed on the admin surface.
func RequireProductManager() echo.MiddlewareFunc {
	return RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin)
}
