package audit

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// GetIPAddress extracts the client IP address from the request
func GetIPAddress(c echo.Context) string {
	// X-Forwarded-For may hold a chain; the first entry is the client
	if ip := c.Request().Header.Get("X-Forwarded-For"); ip != "" {
		if idx := strings.IndexByte(ip, ','); idx > 0 {
			return strings.TrimSpace(ip[:idx])
		}
		return ip
	}

	if ip := c.Request().Header.Get("X-Real-IP"); ip != "" {
		return ip
	}

	return c.RealIP()
}

// GetRequestContext extracts the audit context from an Echo context
func GetRequestContext(c echo.Context) (ipAddress, userAgent string) {
	return GetIPAddress(c), c.Request().UserAgent()
}
