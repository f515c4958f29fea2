package middlewares

import (
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Hafizfauzi02/fowra-backend/internal/logger"
)

// RateLimitMiddleware returns a middleware that applies a fixed-window
// request limit per client IP, backed by a Redis counter (INCR + EXPIRE in
// one pipeline). A Redis failure lets the request through: the limiter
// protects the auth endpoints from brute force, it must not take them down.
func RateLimitMiddleware(client *redis.Client, maxRequests int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := "ratelimit:" + clientIP(r)

			pipe := client.Pipeline()
			incrCmd := pipe.Incr(ctx, key)
			pipe.Expire(ctx, key, window)
			if _, err := pipe.Exec(ctx); err != nil {
				logger.Log.Errorw("rate limit pipeline failed", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}

			if incrCmd.Val() > int64(maxRequests) {
				logger.Log.Infow("rate limit exceeded", "key", key, "count", incrCmd.Val())
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(errorResponse{
					Message: "Too many requests",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP prefers X-Real-IP so the limiter works behind a reverse proxy.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
