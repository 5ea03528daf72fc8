package gemini

import (
	"time"

	"github.com/sethvargo/go-retry"
)

// exponentialJitter returns a retry.Backoff that yields base, 2*base, 4*base, ...
// each increased by random()*maxJitter. random must return values in [0, 1).
func exponentialJitter(base, maxJitter time.Duration, random func() float64) retry.Backoff {
	next := base
	return retry.BackoffFunc(func() (time.Duration, bool) {
		delay := next
		if maxJitter > 0 {
			delay += time.Duration(random() * float64(maxJitter))
		}
		next *= 2
		return delay, false
	})
}

// withSleepHook calls hook with every delay that next hands out.
func withSleepHook(next retry.Backoff, hook func(time.Duration)) retry.Backoff {
	return retry.BackoffFunc(func() (time.Duration, bool) {
		delay, stop := next.Next()
		if !stop {
			hook(delay)
		}
		return delay, stop
	})
}
