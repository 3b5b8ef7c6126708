package search

import (
	"time"

	"golang.org/x/time/rate"
)

// ProgressFunc receives periodic search progress: the number of currently
// open nodes across both frontiers and the number of closed nodes. It is
// called from the search goroutine and must return quickly.
type ProgressFunc func(open, closed int64)

// reporter throttles progress callbacks so a caller-supplied interval bounds
// the reporting rate regardless of expansion speed.
type reporter struct {
	fn      ProgressFunc
	limiter *rate.Limiter
}

func newReporter(fn ProgressFunc, every time.Duration) *reporter {
	if fn == nil {
		return nil
	}
	if every <= 0 {
		every = time.Second
	}
	return &reporter{
		fn:      fn,
		limiter: rate.NewLimiter(rate.Every(every), 1),
	}
}

func (r *reporter) report(open, closed int64) {
	if r == nil || !r.limiter.Allow() {
		return
	}
	r.fn(open, closed)
}

// flush delivers a final unthrottled report, so callers always observe the
// terminal counters.
func (r *reporter) flush(open, closed int64) {
	if r == nil {
		return
	}
	r.fn(open, closed)
}
