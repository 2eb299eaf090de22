package middleware

import (
	"fmt"
	"strconv"
	"time"

	"pollsapp/internal/adapter/http/helper"
	"pollsapp/internal/adapter/ratelimit"
	"pollsapp/internal/core/apperror"
	"pollsapp/internal/core/telemetry"
	. "pollsapp/pkg"
	"pollsapp/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RateLimiter struct {
	store   ratelimit.Store
	config  map[string]config.RateLimitConfig
	logger  *zap.Logger
	metrics *telemetry.AppMetrics
}

// NewRateLimiter limits by client IP using the per-route limits in limits.
// limits must contain a "default" entry.
func NewRateLimiter(store ratelimit.Store, limits map[string]config.RateLimitConfig, logger *zap.Logger, metrics *telemetry.AppMetrics) *RateLimiter {
	configs := make(map[string]config.RateLimitConfig, len(limits)+1)
	configs["default"] = config.RateLimitConfig{Requests: 60, Window: time.Minute}

	for key, limit := range limits {
		configs[key] = limit
	}

	return &RateLimiter{
		store:   store,
		config:  configs,
		logger:  logger,
		metrics: metrics,
	}
}

func (rl *RateLimiter) limitFor(method, path string) config.RateLimitConfig {
	if limit, ok := rl.config[method+" "+path]; ok {
		return limit
	}

	if limit, ok := rl.config[path]; ok {
		return limit
	}

	return rl.config["default"]
}

func (rl *RateLimiter) RateLimitMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		methodPath := c.Request.Method + " " + path
		limit := rl.limitFor(c.Request.Method, path)
		key := fmt.Sprintf("rate_limit:%s:%s", methodPath, GetClientIP(c))

		result, err := rl.store.Hit(c.Request.Context(), key, limit.Requests, limit.Window)
		if err != nil {
			// a broken store must not take the API down with it
			rl.logger.Error("Rate limit check failed",
				zap.String("key", key),
				zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit.Requests))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetTime.Unix(), 10))

		if !result.Allowed {
			if rl.metrics != nil {
				rl.metrics.RecordRateLimitHit(c.Request.Context(), path)
			}

			rl.logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.Int("limit", limit.Requests),
				zap.Duration("window", limit.Window))

			c.Header("Retry-After", strconv.Itoa(int(time.Until(result.ResetTime).Seconds())+1))
			helper.SendError(c, apperror.CodeRateLimited,
				fmt.Sprintf("Too many requests. Limit: %d per %v", limit.Requests, limit.Window), nil)
			c.Abort()
			return
		}

		if rl.metrics != nil {
			rl.metrics.RecordRateLimitAllowed(c.Request.Context(), path)
		}

		c.Next()
	}
}
