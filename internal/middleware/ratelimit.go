package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bfpulse/internal/domain/dto"
)

// client is one IP's fixed window.
type client struct {
	windowStart time.Time
	count       int
}

// Defaults for RateLimiter(); tests shrink them.
var (
	window = time.Minute
	limit  = 60
)

// rateLimiter counts requests per client IP in fixed windows.
// NOTE: state is per process; a multi-instance deployment needs a shared store.
type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	window  time.Duration
	limit   int
}

func (l *rateLimiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	cl, ok := l.clients[ip]
	if !ok || now.Sub(cl.windowStart) > l.window {
		l.clients[ip] = &client{windowStart: now, count: 1}
		l.evict(now)
		return true
	}
	cl.count++
	return cl.count <= l.limit
}

// evict drops clients whose window ended; called only when a window opens.
func (l *rateLimiter) evict(now time.Time) {
	for ip, cl := range l.clients {
		if now.Sub(cl.windowStart) > l.window {
			delete(l.clients, ip)
		}
	}
}

// RateLimiter allows up to `limit` requests per `window` per client IP
// (default 60 per minute) and answers 429 with a dto.ErrorResponse beyond that.
//
// Each call returns an independent limiter, so routers built in tests do not
// share counters.
func RateLimiter() gin.HandlerFunc {
	l := &rateLimiter{clients: make(map[string]*client), window: window, limit: limit}

	return func(c *gin.Context) {
		if !l.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}
		c.Next()
	}
}
