package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vpndash/vpndash/internal/shared/constants"
	"github.com/vpndash/vpndash/internal/shared/logger"
)

// CustomLogger writes one access line per request. The route template is
// logged instead of the raw path so user SIDs in URLs do not leak.
// Successful health checks and swagger assets are not logged.
func CustomLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if status < 400 && quietRoute(route) {
			return
		}
		if route == "" {
			route = "unmatched"
		}

		args := []any{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"bytes", c.Writer.Size(),
		}
		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}
		if userID := c.GetString(constants.ContextKeyUserID); userID != "" {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", args...)
		case status >= 400:
			log.Warnw("request rejected", args...)
		default:
			log.Infow("request served", args...)
		}
	}
}

func quietRoute(route string) bool {
	return route == "/api/health" || strings.HasPrefix(route, "/swagger/")
}
