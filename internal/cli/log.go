// Package cli implements the blogscope command-line interface.
//
// This package provides commands for listing, sorting and searching posts,
// users and comments from the blog API, an interactive terminal browser, a
// static host for the built web front end, and cache and config management.
// The CLI is built using cobra and supports verbose logging via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - posts, users, comments: filtered and sorted listings
//   - post, user: a single record with its related data
//   - search: cross-entity search
//   - browse: interactive browser with live filtering
//   - serve: static host for the built front end
//   - cache, config: housekeeping
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every fetch attempt, retry and cache lookup. Loggers are passed
// through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at debug level along with the elapsed time, e.g.
// "Loaded 100 posts (412ms)".
func (p *progress) done(msg string) {
	p.logger.Debugf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// debugHooks logs fetch-layer events at debug level.
type debugHooks struct {
	logger *log.Logger
}

func (h debugHooks) OnRetry(_ context.Context, url string, attempt int, delay time.Duration, err error) {
	h.logger.Debug("retry scheduled", "url", url, "attempt", attempt, "delay", delay, "err", err)
}

func (h debugHooks) OnGiveUp(_ context.Context, url string, attempts int, err error) {
	h.logger.Debug("giving up", "url", url, "attempts", attempts, "err", err)
}

func (h debugHooks) OnCacheHit(_ context.Context, key string) {
	h.logger.Debug("cache hit", "key", key)
}

func (h debugHooks) OnCacheMiss(_ context.Context, key string) {
	h.logger.Debug("cache miss", "key", key)
}

func (h debugHooks) OnCacheSet(_ context.Context, key string, size int) {
	h.logger.Debug("cache set", "key", key, "bytes", size)
}

func (h debugHooks) OnRequest(_ context.Context, method, host, path string) {
	h.logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h debugHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "duration", d.Round(time.Millisecond))
}

func (h debugHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Debug("transport error", "method", method, "host", host, "path", path, "err", err)
}
