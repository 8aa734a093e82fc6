package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/nfrund/cardforge/internal/view"
)

const rateLimitedNotice = "Too many requests. Please try again later."

// RateLimiter limits each client IP to burst requests at once, refilled at
// perMinute requests per minute.
func RateLimiter(perMinute float64, burst int) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// In-memory counters are enough for a single instance.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(perMinute / 60),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			if c.Request().Header.Get("HX-Request") != "true" {
				return c.String(http.StatusTooManyRequests, rateLimitedNotice)
			}
			// htmx ignores error statuses, so answer 200 with only an
			// out-of-band notice and keep the target untouched.
			var buf bytes.Buffer
			if err := view.OOBNotice(rateLimitedNotice, true).Render(&buf); err != nil {
				return err
			}
			c.Response().Header().Set("HX-Reswap", "none")
			return c.HTMLBlob(http.StatusOK, buf.Bytes())
		},
	}
	return middleware.RateLimiterWithConfig(config)
}

// TaglineRateLimiter guards the route that calls the paid text model.
func TaglineRateLimiter() echo.MiddlewareFunc {
	return RateLimiter(10, 10)
}
