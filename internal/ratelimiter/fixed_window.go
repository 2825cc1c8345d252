package ratelimiter

import (
	"sync"
	"time"
)

// Config is read from the environment in cmd/api.
type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

// FixedWindow counts requests per client IP and wipes the counters every
// window. It guards the anonymous review submission path; authenticated
// admin traffic is not limited.
type FixedWindow struct {
	mu      sync.Mutex
	clients map[string]int
	limit   int
	window  time.Duration
}

func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	rl := &FixedWindow{
		clients: make(map[string]int),
		limit:   limit,
		window:  window,
	}
	go rl.reset()
	return rl
}

func (rl *FixedWindow) reset() {
	ticker := time.NewTicker(rl.window)
	for range ticker.C {
		rl.mu.Lock()
		rl.clients = make(map[string]int)
		rl.mu.Unlock()
	}
}

// Allow reports whether ip may proceed, and how long to wait if not.
func (rl *FixedWindow) Allow(ip string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if rl.clients[ip] >= rl.limit {
		return false, rl.window
	}
	rl.clients[ip]++
	return true, 0
}
