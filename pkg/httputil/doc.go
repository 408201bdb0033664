// Package httputil provides retry infrastructure for the blog API client.
//
// # Overview
//
// [Retry] runs an operation up to a fixed ceiling, waiting between attempts
// according to a [Backoff]. Only failures wrapped with [RetryableError] are
// retried; anything else is returned immediately.
//
// # Backoff
//
// Two strategies are provided:
//
//   - [Linear]: wait attempt × step (1s, 2s, 3s, ... with a 1s step)
//   - [Exponential]: wait step, then double after each failure (1s, 2s, 4s, ...)
//
// The default [Policy] is three attempts with [Linear] backoff of one second,
// so a request that keeps failing is tried at t=0, t=1s and t=3s.
//
// # Testing
//
// The wait itself goes through [Policy.Sleep]. Tests replace it with a fake
// that records delays and returns immediately:
//
//	var delays []time.Duration
//	p := httputil.DefaultPolicy()
//	p.Sleep = func(_ context.Context, d time.Duration) error {
//	    delays = append(delays, d)
//	    return nil
//	}
//
// # Cancellation
//
// A cancelled context interrupts the wait and [Retry] returns ctx.Err().
// In-flight attempts are not interrupted by Retry itself; fn decides whether
// to honour the context.
package httputil
