// Package ratelimit implements a fixed-window request throttle keyed by
// client identifier. Entries are process-local and non-durable; losing them
// on restart is acceptable.
package ratelimit

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// UnknownClient is the shared bucket for requests whose origin cannot be
// identified. All such clients throttle together.
const UnknownClient = "unknown"

type entry struct {
	count     int
	resetTime time.Time
}

// Limiter counts requests per identifier in non-overlapping windows.
// Safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	window  time.Duration
	now     func() time.Time
	stop    chan struct{}
	once    sync.Once
}

func New(max int, window time.Duration) *Limiter {
	return &Limiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
}

// Allow records one request for id and reports whether it is within budget.
// A denied request does not consume budget.
func (l *Limiter) Allow(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	e, ok := l.entries[id]
	if !ok || !now.Before(e.resetTime) {
		l.entries[id] = &entry{count: 1, resetTime: now.Add(l.window)}
		return true
	}
	if e.count >= l.max {
		return false
	}
	e.count++
	return true
}

// StartSweeper launches the background sweep that drops expired entries once
// per window, bounding memory for abandoned identifiers. Call Stop to halt it.
func (l *Limiter) StartSweeper() {
	go func() {
		ticker := time.NewTicker(l.window)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				l.sweep()
			case <-l.stop:
				return
			}
		}
	}()
}

func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stop) })
}

func (l *Limiter) sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	for id, e := range l.entries {
		if !now.Before(e.resetTime) {
			delete(l.entries, id)
		}
	}
}

// ClientIdentifier derives the throttle key for a request: the first
// proxy-forwarded address when present, then the direct connection address,
// then UnknownClient.
func ClientIdentifier(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first, _, ok := strings.Cut(fwd, ","); ok {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(fwd)
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return UnknownClient
}
