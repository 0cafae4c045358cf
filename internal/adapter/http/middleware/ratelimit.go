package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "wager-tracker/internal/adapter/storage/redis"
	"wager-tracker/pkg/apperror"
	"wager-tracker/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Endpoint groups sharing a counter per caller.
const (
	GroupRead  = "read"
	GroupWrite = "write"
	GroupReset = "reset"
)

// RateLimitRules derives per-group limits from the configured base rule.
// Writes get half the read budget; ledger reset is capped at one per window.
func RateLimitRules(base RateLimitRule) map[string]RateLimitRule {
	write := base.Limit / 2
	if write < 1 {
		write = 1
	}
	return map[string]RateLimitRule{
		GroupRead:  base,
		GroupWrite: {Limit: write, Window: base.Window},
		GroupReset: {Limit: 1, Window: base.Window},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys the counter by participant when authenticated,
// by client IP otherwise.
func extractIdentifier(c *gin.Context) string {
	if actor, ok := ActorFrom(c); ok {
		return "participant:" + strconv.FormatInt(actor.ID, 10)
	}
	return "ip:" + c.ClientIP()
}
