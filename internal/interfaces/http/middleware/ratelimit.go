package middleware

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/infrastructure/ratelimit"
	"github.com/vpndash/vpndash/internal/shared/constants"
	"github.com/vpndash/vpndash/internal/shared/logger"
	"github.com/vpndash/vpndash/internal/shared/utils"
)

// RateLimiter limits requests per client IP.
type RateLimiter struct {
	limiter ratelimit.Limiter
	scope   string
	logger  logger.Interface
}

// NewRateLimiter wraps a limiter. scope separates the counters of route groups
// sharing one limiter.
func NewRateLimiter(limiter ratelimit.Limiter, scope string, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		scope:   scope,
		logger:  logger,
	}
}

// Limit returns a Gin middleware that enforces the rate limit per client IP.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.scope + ":ip:" + c.ClientIP()

		res, err := rl.limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// store unavailable: let the request through
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

		if !res.Allowed {
			c.Header(constants.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(res.RetryAfter.Seconds()))))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
