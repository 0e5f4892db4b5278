package middleware

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
)

// AbortRequestOption options for request timeout
type AbortRequestOption struct {
	Timeout time.Duration
}

// AbortRequest bound every request context with a deadline, long running
// handlers observe the cancellation through the request context
func AbortRequest(option *AbortRequestOption) echo.MiddlewareFunc {
	timeout := option.Timeout
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if timeout <= 0 {
				return next(c)
			}
			r := c.Request()
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			c.SetRequest(r.WithContext(ctx))
			return next(c)
		}
	}
}
