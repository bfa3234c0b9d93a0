package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// LoginRateLimiterConfig bounds login attempts per client IP inside a
// fixed window.
type LoginRateLimiterConfig struct {
	MaxRequests int
	Window      time.Duration
	KeyPrefix   string
}

func DefaultLoginRateLimiterConfig() LoginRateLimiterConfig {
	return LoginRateLimiterConfig{
		MaxRequests: 10,
		Window:      15 * time.Minute,
		KeyPrefix:   "ratelimit:login",
	}
}

// LoginRateLimiter is a fixed-window limiter backed by redis. A nil
// client disables limiting (redis is optional at boot).
func LoginRateLimiter(rdb *redis.Client, cfg LoginRateLimiterConfig) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", cfg.KeyPrefix, c.ClientIP())

		count, err := rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// Redis being down must not lock everyone out.
			log.Warn().Err(err).Msg("rate limiter unavailable, letting request through")
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(c.Request.Context(), key, cfg.Window)
		}

		if count > int64(cfg.MaxRequests) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Слишком много попыток входа. Попробуйте позже",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
