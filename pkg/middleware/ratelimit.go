package middleware

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"theatre-api/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimit is a fixed-window limiter keyed by client IP and route, backed
// by Redis. It fails open: a disabled config, nil client, or Redis error
// lets the request through.
func RateLimit(cfg utils.RateLimitConfig, rdb *redis.Client, logger *zap.Logger) func(http.Handler) http.Handler {
	pass := func(next http.Handler) http.Handler { return next }
	if !cfg.Enabled || rdb == nil {
		return pass
	}

	window := time.Duration(cfg.WindowSeconds) * time.Second

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			key := fmt.Sprintf("rl:%s:%s", host, r.URL.Path)

			ctx := r.Context()
			count, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				logger.Warn("Rate limiter unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if count == 1 {
				rdb.Expire(ctx, key, window)
			}

			if count > int64(cfg.Requests) {
				logger.Warn("Rate limit exceeded",
					zap.String("key", key),
					zap.Int64("count", count))
				utils.ResponseTooManyRequests(w, "Too many requests, slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
