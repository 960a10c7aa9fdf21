package gateway

import (
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Buckets unused for this long are dropped on the next sweep.
const limiterIdleTTL = 10 * time.Minute

var errRateLimited = errs.New("rate limit exceeded")

type limiterEntry struct {
	lim      *rate.Limiter
	lastSeen atomic.Int64
}

// RateLimiter keeps one token bucket per caller, keyed by the validated
// identity or, on routes without one, the client ip.
type RateLimiter struct {
	limiters  sync.Map
	cfg       config.RateLimitConfig
	clock     clock.Clock
	lastSweep atomic.Int64
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	l := &RateLimiter{cfg: cfg, clock: clk}
	l.lastSweep.Store(clk.Now().UnixNano())
	return l
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	now := l.clock.Now().UnixNano()
	l.sweep(now)

	if v, ok := l.limiters.Load(key); ok {
		if e, ok := v.(*limiterEntry); ok {
			e.lastSeen.Store(now)
			return e.lim
		}
	}

	burst := l.cfg.Burst
	if burst <= 0 {
		burst = 5
	}

	e := &limiterEntry{lim: rate.NewLimiter(rate.Limit(l.cfg.RPS), burst)}
	e.lastSeen.Store(now)
	actual, loaded := l.limiters.LoadOrStore(key, e)
	if loaded {
		if actualEntry, ok := actual.(*limiterEntry); ok {
			actualEntry.lastSeen.Store(now)
			return actualEntry.lim
		}
	}
	return e.lim
}

// sweep runs at most once per limiterIdleTTL.
func (l *RateLimiter) sweep(now int64) {
	last := l.lastSweep.Load()
	if now-last < int64(limiterIdleTTL) || !l.lastSweep.CompareAndSwap(last, now) {
		return
	}
	l.limiters.Range(func(k, v any) bool {
		if e, ok := v.(*limiterEntry); ok && now-e.lastSeen.Load() >= int64(limiterIdleTTL) {
			l.limiters.Delete(k)
		}
		return true
	})
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.cfg.Enabled {
			c.Next()
			return
		}
		key := c.ClientIP()
		if userID, ok := middleware.GetUserID(c); ok {
			key = userID.String()
		}
		if !l.getLimiter(key).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, httperr.KindTooMany, "rate limit exceeded, retry later")
			return
		}
		c.Next()
	}
}
