package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindow_Allow(t *testing.T) {
	rl := NewFixedWindow(3, time.Minute)

	for i := 0; i < 3; i++ {
		ok, _ := rl.Allow("10.0.0.1")
		assert.True(t, ok, "request %d should pass", i+1)
	}

	ok, retryAfter := rl.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retryAfter)
}

func TestFixedWindow_PerClientCounters(t *testing.T) {
	rl := NewFixedWindow(1, time.Minute)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)

	// A second client has its own budget.
	ok, _ = rl.Allow("10.0.0.2")
	assert.True(t, ok)
}

func TestFixedWindow_Resets(t *testing.T) {
	rl := NewFixedWindow(1, 50*time.Millisecond)

	ok, _ := rl.Allow("10.0.0.1")
	assert.True(t, ok)
	ok, _ = rl.Allow("10.0.0.1")
	assert.False(t, ok)

	time.Sleep(200 * time.Millisecond)

	ok, _ = rl.Allow("10.0.0.1")
	assert.True(t, ok)
}
