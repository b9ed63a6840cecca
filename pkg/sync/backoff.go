package sync

import (
	"math/rand"
	"time"
)

// RetryDelay computes the wait before reconnect attempt n (zero-based):
// 2^(n+1) seconds capped at maxDelay, plus a random jitter drawn from
// [minJitter, maxJitter]. Ignoring jitter the sequence is non-decreasing
// and never exceeds maxDelay.
func RetryDelay(attempt int, maxDelay, minJitter, maxJitter time.Duration) time.Duration {
	delay := maxDelay
	// Guard the shift; beyond 30 doublings any sane cap has long been hit.
	if attempt < 30 {
		delay = time.Duration(1<<uint(attempt+1)) * time.Second
		if delay > maxDelay {
			delay = maxDelay
		}
	}

	jitter := minJitter
	if span := maxJitter - minJitter; span > 0 {
		jitter += time.Duration(rand.Int63n(int64(span) + 1))
	}

	return delay + jitter
}
