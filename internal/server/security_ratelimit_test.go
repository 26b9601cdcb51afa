package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSecurityLoggingMiddleware_RateLimiting(t *testing.T) {
	const limit = 50
	detector := NewSuspiciousActivityDetector(limit, time.Minute)
	middleware := SecurityLoggingMiddleware(nil, detector)

	handler := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	ip := "192.168.1.100"
	req := httptest.NewRequest("GET", "/test", nil)
	req.RemoteAddr = ip + ":1234"

	for i := 0; i < limit; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d failed with status %d", i, rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429 Too Many Requests, got %d", rec.Code)
	}

	detector.mu.Lock()
	count := detector.requestCountByIP[ip]
	detector.mu.Unlock()

	if count != limit+1 {
		t.Errorf("expected count %d, got %d", limit+1, count)
	}

	// Other clients are unaffected.
	other := httptest.NewRequest("GET", "/test", nil)
	other.RemoteAddr = "192.168.1.101:1234"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	if rec.Code != http.StatusOK {
		t.Errorf("expected other client to pass, got %d", rec.Code)
	}
}

func TestSuspiciousActivityDetector_WindowReset(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	detector := NewSuspiciousActivityDetector(2, time.Minute)
	detector.now = func() time.Time { return now }
	detector.lastResetTime = now

	for i := 0; i < 2; i++ {
		if !detector.RecordRequest("1.2.3.4") {
			t.Fatalf("request %d should pass", i)
		}
	}
	if detector.RecordRequest("1.2.3.4") {
		t.Fatal("third request in window should be blocked")
	}

	now = now.Add(time.Minute + time.Second)

	if !detector.RecordRequest("1.2.3.4") {
		t.Error("request after the window should pass")
	}
}
