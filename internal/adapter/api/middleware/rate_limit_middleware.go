package middleware

import (
	"net/http"
	"strconv"

	"lokapasar/internal/infrastructure/ratelimit"
	"lokapasar/pkg/errors"
	"lokapasar/pkg/response"

	"github.com/labstack/echo/v4"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// Limit throttles catalog actions per client IP.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		allowed, wait := m.limiter.Allow(c.RealIP())
		if !allowed {
			c.Response().Header().Set("Retry-After", strconv.Itoa(int(wait.Seconds())+1))
			return response.Error(c, errors.New("RATE_LIMITED", "Too many requests", http.StatusTooManyRequests, nil))
		}
		return next(c)
	}
}
