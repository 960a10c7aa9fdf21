//go:build unit

package gateway

import (
	"testing"
	"time"

	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func countLimiters(l *RateLimiter) int {
	n := 0
	l.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func TestRateLimiterEvictsIdleBuckets(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	l := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1}, clk)

	l.getLimiter("idle")
	l.getLimiter("busy")
	assert.Equal(t, 2, countLimiters(l))

	clk.Add(limiterIdleTTL / 2)
	l.getLimiter("busy")

	clk.Add(limiterIdleTTL/2 + time.Second)
	l.getLimiter("busy")

	_, idleKept := l.limiters.Load("idle")
	_, busyKept := l.limiters.Load("busy")
	assert.False(t, idleKept)
	assert.True(t, busyKept)
	assert.Equal(t, 1, countLimiters(l))
}

func TestRateLimiterReusesBucketPerKey(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))
	l := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 1, Burst: 1}, clk)

	assert.Same(t, l.getLimiter("a"), l.getLimiter("a"))
	assert.NotSame(t, l.getLimiter("a"), l.getLimiter("b"))
}
