package httputil

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrExhausted is returned by [Retry] when the loop finishes without a single
// attempt having produced either a success or a failure. With a positive
// attempt ceiling this cannot happen; it guards a misconfigured [Policy].
var ErrExhausted = errors.New("all retry attempts failed")

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network errors, bad statuses, truncated bodies)
// with this type so that [Retry] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// Retryable wraps err as a [RetryableError]. A nil err stays nil.
func Retryable(err error) error {
	if err == nil {
		return nil
	}
	return &RetryableError{Err: err}
}

// IsRetryable reports whether err is wrapped with [RetryableError].
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// Backoff returns the delay to wait after the given failed attempt.
// Attempts are numbered from 1.
type Backoff func(attempt int) time.Duration

// Linear waits attempt × step: 1×step after the first failure, 2×step after
// the second, and so on.
func Linear(step time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return time.Duration(attempt) * step
	}
}

// MaxBackoff caps the delay returned by [Exponential].
const MaxBackoff = time.Hour

// Exponential waits base after the first failure and doubles the delay after
// each subsequent one, up to [MaxBackoff].
func Exponential(base time.Duration) Backoff {
	return func(attempt int) time.Duration {
		if attempt < 1 || base <= 0 {
			return base
		}
		shift := attempt - 1
		if shift >= 62 || base > MaxBackoff>>shift {
			return MaxBackoff
		}
		return base << shift
	}
}

// ParseStrategy returns the backoff for a strategy name ("linear" or
// "exponential") with the given step.
func ParseStrategy(name string, step time.Duration) (Backoff, error) {
	switch name {
	case "", StrategyLinear:
		return Linear(step), nil
	case StrategyExponential:
		return Exponential(step), nil
	default:
		return nil, fmt.Errorf("unknown backoff strategy %q (want %s or %s)", name, StrategyLinear, StrategyExponential)
	}
}

// Backoff strategy names accepted by [ParseStrategy].
const (
	StrategyLinear      = "linear"
	StrategyExponential = "exponential"
)

// Sleeper suspends the calling goroutine for d or until ctx is done.
// Tests substitute a fake to observe delays without waiting.
type Sleeper func(ctx context.Context, d time.Duration) error

// Sleep is the real [Sleeper], backed by a timer.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Policy configures [Retry].
type Policy struct {
	// Attempts is the total number of tries, including the first.
	Attempts int

	// Backoff computes the wait after a failed attempt. Nil means Linear(1s).
	Backoff Backoff

	// Sleep performs the wait. Nil means [Sleep].
	Sleep Sleeper

	// OnRetry, if set, is called before each wait with the failed attempt
	// number, the delay about to be slept and the attempt's error.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// DefaultAttempts is the default retry ceiling (one try plus two retries).
const DefaultAttempts = 3

// DefaultStep is the default linear backoff step.
const DefaultStep = time.Second

// DefaultPolicy returns 3 attempts with linear backoff of attempt × 1s.
func DefaultPolicy() Policy {
	return Policy{
		Attempts: DefaultAttempts,
		Backoff:  Linear(DefaultStep),
		Sleep:    Sleep,
	}
}

// Retry executes fn up to p.Attempts times. It only retries errors wrapped
// with [RetryableError]; other errors are returned immediately. fn receives
// the 1-based attempt number.
//
// Returns nil on the first success, the last error once the ceiling is
// reached, ctx.Err() if cancelled while waiting, or [ErrExhausted] if no
// attempt ran at all.
func Retry(ctx context.Context, p Policy, fn func(attempt int) error) error {
	backoff := p.Backoff
	if backoff == nil {
		backoff = Linear(DefaultStep)
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	var lastErr error
	for attempt := 1; attempt <= p.Attempts; attempt++ {
		err := fn(attempt)
		if err == nil {
			return nil
		}
		lastErr = err
		if !IsRetryable(err) {
			return err
		}
		if attempt == p.Attempts {
			break
		}

		delay := backoff(attempt)
		if p.OnRetry != nil {
			p.OnRetry(attempt, delay, err)
		}
		if err := sleep(ctx, delay); err != nil {
			return err
		}
	}

	if lastErr == nil {
		return ErrExhausted
	}
	return lastErr
}
