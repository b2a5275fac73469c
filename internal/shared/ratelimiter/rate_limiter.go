// Package ratelimiter provides a fixed-window request limiter keyed by
// caller, used to throttle the authentication endpoints.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter counts requests per key within a fixed window and rejects the
// overflow. Unlike an outbound API limiter it never sleeps: an HTTP handler
// must answer immediately, so callers get a verdict instead of a delay.
type Limiter struct {
	limit    int           // allowed requests per window
	interval time.Duration // window length

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

type window struct {
	count int
	start time.Time
}

// New creates a Limiter allowing limit requests per interval for each key.
func New(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:     limit,
		interval:  interval,
		windows:   make(map[string]*window),
		lastSweep: time.Now(),
	}
}

// Allow reports whether another request for key fits in the current window.
func (l *Limiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	l.sweep(now)

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.interval {
		l.windows[key] = &window{count: 1, start: now}
		return true
	}

	w.count++
	return w.count <= l.limit
}

// sweep drops expired windows so the map does not accumulate an entry per
// client forever. Runs at most once per interval; callers hold mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.interval {
		return
	}
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.interval {
			delete(l.windows, key)
		}
	}
	l.lastSweep = now
}

// Reset clears all windows. Intended for tests.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.windows = make(map[string]*window)
}
