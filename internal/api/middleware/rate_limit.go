package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Chaitanyahoon/focusarenaa-sub001/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const limiterIdleExpiry = time.Hour

// ipLimiterPool hands out one token bucket per client IP and evicts buckets
// that have been idle longer than limiterIdleExpiry.
type ipLimiterPool struct {
	mu      sync.Mutex
	entries map[string]*ipLimiterEntry
	rate    rate.Limit
	burst   int
}

type ipLimiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newIPLimiterPool(r rate.Limit, burst int) *ipLimiterPool {
	pool := &ipLimiterPool{
		entries: make(map[string]*ipLimiterEntry),
		rate:    r,
		burst:   burst,
	}

	go pool.evictIdle()
	return pool
}

func (p *ipLimiterPool) evictIdle() {
	ticker := time.NewTicker(time.Minute)
	for range ticker.C {
		p.mu.Lock()
		for ip, entry := range p.entries {
			if time.Since(entry.lastSeen) > limiterIdleExpiry {
				delete(p.entries, ip)
			}
		}
		p.mu.Unlock()
	}
}

func (p *ipLimiterPool) allow(ip string) bool {
	p.mu.Lock()
	entry, ok := p.entries[ip]
	if !ok {
		entry = &ipLimiterEntry{limiter: rate.NewLimiter(p.rate, p.burst)}
		p.entries[ip] = entry
	}
	entry.lastSeen = time.Now()
	p.mu.Unlock()

	return entry.limiter.Allow()
}

func RateLimit(rps float64, burst int) gin.HandlerFunc {
	pool := newIPLimiterPool(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !pool.allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse[any]{
				Success: false,
				Status:  http.StatusTooManyRequests,
				Message: "too many requests",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
