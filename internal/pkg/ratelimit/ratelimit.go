package ratelimit

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// DefaultIdleTTL is how long a client's bucket survives without requests.
const DefaultIdleTTL = 10 * time.Minute

// Limiter hands out one token bucket per client key. Buckets of idle clients expire.
type Limiter struct {
	limiters *cache.Cache
	rps      rate.Limit
	burst    int
}

func New(rps float64, burst int) *Limiter {
	return NewWithIdleTTL(rps, burst, DefaultIdleTTL)
}

func NewWithIdleTTL(rps float64, burst int, idle time.Duration) *Limiter {
	if burst <= 0 {
		burst = 5
	}
	return &Limiter{
		limiters: cache.New(idle, 2*idle),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

func (l *Limiter) get(key string) *rate.Limiter {
	if v, ok := l.limiters.Get(key); ok {
		lim := v.(*rate.Limiter)
		// Idle time counts from the latest request.
		l.limiters.SetDefault(key, lim)
		return lim
	}

	lim := rate.NewLimiter(l.rps, l.burst)
	if err := l.limiters.Add(key, lim, cache.DefaultExpiration); err != nil {
		// Another request for key created the bucket first.
		if v, ok := l.limiters.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return lim
}

// Allow reports whether key may make another request now.
func (l *Limiter) Allow(key string) bool {
	return l.get(key).Allow()
}

// Middleware rejects clients over their budget with 429. A nil Limiter lets everything through.
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if l == nil || l.rps <= 0 {
			c.Next()
			return
		}
		if !l.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
