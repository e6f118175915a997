package middleware

import (
	"net/http"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/user"
	"github.com/cliptokk/api/pkg/models"
	"github.com/labstack/echo/v4"
)

// RequireAdmin middleware ensures the user has the admin role
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return RequireRole(db, user.RoleAdmin)
}

// RequireRole middleware ensures the user has one of the given roles.
// Admins always pass: they can moderate creator and clipper surfaces.
func RequireRole(db *ent.Client, roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get user ID from context (set by JWT middleware)
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "unauthorized",
					Message: "Authentication required",
				})
			}

			userData, err := db.User.Get(c.Request().Context(), userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "user_not_found",
					Message: "User not found",
				})
			}

			allowed := userData.Role == user.RoleAdmin
			for _, r := range roles {
				if userData.Role == r {
					allowed = true
					break
				}
			}
			if !allowed {
				return c.JSON(http.StatusForbidden, models.ErrorResponse{
					Error:   "forbidden",
					Message: "Insufficient role for this resource",
				})
			}

			// Set user role in context for handlers
			c.Set("user_role", string(userData.Role))

			return next(c)
		}
	}
}
