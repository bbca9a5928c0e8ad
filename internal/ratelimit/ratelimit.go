// Package ratelimit counts requests per key over a one-minute window.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Window is the period each limit applies to.
const Window = time.Minute

// Limiter decides whether one more request for key is allowed. When it is
// not, retryAfter says how long the caller should wait.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// MemoryLimiter is a per-process sliding-window limiter.
type MemoryLimiter struct {
	max     int
	now     func() time.Time
	mu      sync.Mutex
	clients map[string][]time.Time
}

// NewMemoryLimiter allows max requests per key per Window.
func NewMemoryLimiter(max int) *MemoryLimiter {
	return &MemoryLimiter{
		max:     max,
		now:     time.Now,
		clients: make(map[string][]time.Time),
	}
}

var _ Limiter = (*MemoryLimiter)(nil)

// Allow records a request for key if it fits in the window.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	now := l.now()
	windowStart := now.Add(-Window)

	l.mu.Lock()
	defer l.mu.Unlock()

	valid := prune(l.clients[key], windowStart)
	if len(valid) >= l.max {
		l.clients[key] = valid
		return false, valid[0].Add(Window).Sub(now), nil
	}
	l.clients[key] = append(valid, now)
	return true, 0, nil
}

// Run drops idle keys every interval until ctx is done.
func (l *MemoryLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.cleanup()
		}
	}
}

func (l *MemoryLimiter) cleanup() {
	windowStart := l.now().Add(-Window)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, ts := range l.clients {
		valid := prune(ts, windowStart)
		if len(valid) == 0 {
			delete(l.clients, key)
			continue
		}
		l.clients[key] = valid
	}
}

// prune filters timestamps in place, keeping those after windowStart.
func prune(ts []time.Time, windowStart time.Time) []time.Time {
	valid := ts[:0]
	for _, t := range ts {
		if t.After(windowStart) {
			valid = append(valid, t)
		}
	}
	return valid
}
