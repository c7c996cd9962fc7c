package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestFixedWindowBudget(t *testing.T) {
	l := New(3, time.Minute)
	base := time.Unix(1700000000, 0)
	l.now = func() time.Time { return base }

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("4th request in window should be denied")
	}
	// denial must not consume budget or extend the window
	if l.Allow("1.2.3.4") {
		t.Fatal("still inside window, should stay denied")
	}

	// other identifiers have independent budgets
	if !l.Allow("5.6.7.8") {
		t.Fatal("different identifier should be allowed")
	}

	// window elapses, counter resets
	l.now = func() time.Time { return base.Add(time.Minute) }
	if !l.Allow("1.2.3.4") {
		t.Fatal("new window should allow again")
	}
}

func TestSweepDropsExpiredEntries(t *testing.T) {
	l := New(3, time.Minute)
	base := time.Unix(1700000000, 0)
	l.now = func() time.Time { return base }

	l.Allow("a")
	l.Allow("b")
	if len(l.entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(l.entries))
	}

	l.now = func() time.Time { return base.Add(2 * time.Minute) }
	l.sweep()
	if len(l.entries) != 0 {
		t.Fatalf("expected sweep to drop expired entries, got %d", len(l.entries))
	}
}

func TestClientIdentifier(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
	if got := ClientIdentifier(req); got != "10.0.0.1" {
		t.Errorf("forwarded-for: got %q", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Real-IP", "10.0.0.3")
	if got := ClientIdentifier(req); got != "10.0.0.3" {
		t.Errorf("real-ip: got %q", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = "192.0.2.9:1234"
	if got := ClientIdentifier(req); got != "192.0.2.9" {
		t.Errorf("remote addr: got %q", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.RemoteAddr = ""
	if got := ClientIdentifier(req); got != UnknownClient {
		t.Errorf("unknown: got %q", got)
	}
}
