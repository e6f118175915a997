package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/labstack/echo/v4"
)

// RequireEmailVerified middleware ensures user has verified their email.
// Applied to money-moving endpoints (recharge, payout) so unverified
// accounts cannot trigger Stripe flows.
func RequireEmailVerified(db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get user ID from context (set by JWT middleware)
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			user, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "user_not_found",
					"message": "User not found",
				})
			}

			if !user.EmailVerified {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "email_not_verified",
					"message": "Please verify your email address to continue",
					"email":   user.Email,
				})
			}

			return next(c)
		}
	}
}
