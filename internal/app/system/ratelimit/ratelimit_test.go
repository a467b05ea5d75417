package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiter_AllowUpToLimit(t *testing.T) {
	l := New(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Allow("k") {
			t.Fatalf("attempt %d refused inside limit", i+1)
		}
	}
	if l.Allow("k") {
		t.Fatal("attempt over limit allowed")
	}
	if !l.Allow("other") {
		t.Fatal("independent key refused")
	}
}

func TestLimiter_Reset(t *testing.T) {
	l := New(1, time.Minute)
	l.Allow("k")
	if l.Allow("k") {
		t.Fatal("second attempt allowed")
	}
	l.Reset("k")
	if !l.Allow("k") {
		t.Fatal("attempt refused after reset")
	}
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "10.0.0.9:4321"
	if got := ClientIP(r); got != "10.0.0.9" {
		t.Fatalf("ClientIP = %q, want 10.0.0.9", got)
	}

	r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(r); got != "203.0.113.7" {
		t.Fatalf("ClientIP with XFF = %q, want 203.0.113.7", got)
	}
}

func TestLoginLimiter_PerIdentifier(t *testing.T) {
	ll := &LoginLimiter{
		ipLimiter:    New(100, time.Minute),
		loginLimiter: New(2, time.Minute),
	}
	r := httptest.NewRequest("POST", "/api/auth/login", nil)
	r.RemoteAddr = "10.0.0.9:4321"

	for i := 0; i < 2; i++ {
		if ok, _ := ll.Check(r, "Rahim@Example.com"); !ok {
			t.Fatalf("attempt %d refused inside limit", i+1)
		}
	}
	// Identifier matching folds case and whitespace.
	if ok, reason := ll.Check(r, "  rahim@example.com"); ok {
		t.Fatal("third attempt for same identifier allowed")
	} else if reason == "" {
		t.Fatal("blocked attempt must carry a reason")
	}

	ll.ResetLogin("rahim@example.com")
	if ok, _ := ll.Check(r, "rahim@example.com"); !ok {
		t.Fatal("attempt refused after ResetLogin")
	}
}
