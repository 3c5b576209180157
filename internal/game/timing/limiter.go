package timing

import (
	"time"

	"gl-sandbox/internal/config"
)

// idleFPS caps the loop while the cursor is released
const idleFPS = 60

// FPSLimiter provides high-precision frame rate limiting
type FPSLimiter struct {
	next time.Time
}

// NewFPSLimiter creates a limiter driven by config.GetFPSLimit
func NewFPSLimiter() *FPSLimiter {
	return &FPSLimiter{}
}

// frameTarget returns the frame period for the configured limit, 0 meaning no wait
func frameTarget(limit int, idle bool) time.Duration {
	if idle && (limit <= 0 || limit > idleFPS) {
		limit = idleFPS
	}
	if limit <= 0 {
		return 0
	}
	return time.Second / time.Duration(limit)
}

// spinWindow is how close to the deadline sleeping gives way to spinning
const spinWindow = 200 * time.Microsecond

// Wait blocks until the next frame is due
func (f *FPSLimiter) Wait(idle bool) {
	target := frameTarget(config.GetFPSLimit(), idle)
	if target == 0 {
		f.next = time.Time{}
		return
	}
	f.next = nextDeadline(f.next, time.Now(), target)
	sleepUntil(f.next)
}

// nextDeadline advances prev by one period. A zero prev starts a new
// schedule, and a deadline already more than a period behind now is
// rebased on now so a hitch does not cause a burst of unpaced frames.
func nextDeadline(prev, now time.Time, period time.Duration) time.Time {
	if prev.IsZero() || now.Sub(prev) > period {
		return now.Add(period)
	}
	return prev.Add(period)
}

// sleepUntil sleeps through most of the wait and spins out the last
// spinWindow, which time.Sleep is too coarse for.
func sleepUntil(deadline time.Time) {
	if d := time.Until(deadline) - spinWindow; d > 0 {
		time.Sleep(d)
	}
	for time.Now().Before(deadline) {
	}
}
