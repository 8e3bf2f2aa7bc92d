package middleware

import (
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// ClientIdentity resolves a stable identity string for the request origin:
// the first entry of X-Forwarded-For when present, otherwise the peer
// address. The same resolution scopes likes and rate limits, so one visitor
// is one identity everywhere.
func ClientIdentity(c *gin.Context) string {
	if xf := c.GetHeader("X-Forwarded-For"); xf != "" {
		return strings.TrimSpace(strings.Split(xf, ",")[0])
	}
	return c.ClientIP()
}

// ClientRateLimiter keeps one token bucket per client identity.
type ClientRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func NewClientRateLimiter(rps float64, burst int) *ClientRateLimiter {
	return &ClientRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *ClientRateLimiter) limiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.rps, l.burst)
		l.limiters[key] = limiter
	}
	return limiter
}

// Handler rejects requests from clients that exhausted their bucket.
func (l *ClientRateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.limiter(ClientIdentity(c)).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
