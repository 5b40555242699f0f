package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	defer rl.Stop()

	require.True(t, rl.Allow("10.0.0.1"))
	require.True(t, rl.Allow("10.0.0.1"))
	require.False(t, rl.Allow("10.0.0.1"))

	// buckets are per identifier
	require.True(t, rl.Allow("10.0.0.2"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	rl.Allow("idle")
	rl.cleanup(time.Now())
	require.Len(t, rl.limiters, 1)

	rl.cleanup(time.Now().Add(rateLimiterIdleTimeout + time.Second))
	require.Empty(t, rl.limiters)
}

func TestRateLimiter_StopTwice(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	rl.Stop()
	rl.Stop()
}
