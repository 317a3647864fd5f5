package middleware

import (
	"log"
	"net"
	"net/http"
	"time"

	"chat-service/pkg/cache"
	"chat-service/pkg/response"
)

// RateLimit caps requests per client IP inside a fixed window. If Redis is
// unreachable the request is allowed through; limiting is best effort.
func RateLimit(c *cache.Cache, limit int64, window time.Duration, scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			cnt, err := c.IncrWithExpire(r.Context(), "rate:"+scope, host, window)
			if err != nil {
				log.Printf("[WARN] rate limit check failed for %s: %v", host, err)
				next.ServeHTTP(w, r)
				return
			}
			if cnt > limit {
				response.Error(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
