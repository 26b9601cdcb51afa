// Package leaktest has goroutine leak checks for concurrency tests.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay = 10 * time.Millisecond
	drainDelay  = 50 * time.Millisecond
)

// GoroutineChecker compares the goroutine count before and after a test body.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker records the current goroutine count.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test if more than tolerance goroutines outlived the body.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(4 * drainDelay)
	for {
		runtime.Gosched()
		runtime.GC()
		leaked := runtime.NumGoroutine() - g.before
		if leaked <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			g.t.Errorf("goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
				g.before, g.before+leaked, leaked, tolerance)
			return
		}
		time.Sleep(drainDelay)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit.
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
