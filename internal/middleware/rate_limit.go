package middleware

import (
	"net/http"
	"sync"

	"qaleb-store/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type limiterPool struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      rate.Limit
	burst    int
}

func newLimiterPool(rps float64, burst int) *limiterPool {
	return &limiterPool{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (p *limiterPool) get(key string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.limiters[key]
	if !ok {
		l = rate.NewLimiter(p.rps, p.burst)
		p.limiters[key] = l
	}
	return l
}

// RateLimitByUser applies a per-user token bucket. Falls back to the client
// IP when the request is unauthenticated.
func RateLimitByUser(rps float64, burst int) gin.HandlerFunc {
	pool := newLimiterPool(rps, burst)

	return func(c *gin.Context) {
		key := c.GetString("user_id_validated")
		if key == "" {
			key = c.ClientIP()
		}

		if !pool.get(key).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "عدد كبير من الطلبات، حاول لاحقاً", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	pool := newLimiterPool(rps, burst)

	return func(c *gin.Context) {
		if !pool.get(c.ClientIP()).Allow() {
			response.Error(c, http.StatusTooManyRequests, "RATE_LIMITED", "عدد كبير من الطلبات، حاول لاحقاً", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
