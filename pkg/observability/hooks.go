// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about outgoing API requests, retries and cache lookups.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Libraries call hooks to emit events:
//
//	observability.HTTP().OnRequest(ctx, http.MethodGet, host, path)
//	// ... perform request ...
//	observability.HTTP().OnResponse(ctx, http.MethodGet, host, path, status, elapsed)
//
// The CLI registers a logging implementation when --verbose is set.
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Retry Hooks
// =============================================================================

// RetryHooks receives events from the fetch client's retry loop.
type RetryHooks interface {
	// OnRetry records a failed attempt that will be retried after delay.
	OnRetry(ctx context.Context, url string, attempt int, delay time.Duration, err error)

	// OnGiveUp records a fetch that failed terminally after attempts tries.
	OnGiveUp(ctx context.Context, url string, attempts int, err error)
}

// =============================================================================
// Cache Hooks
// =============================================================================

// CacheHooks receives events from response cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, key string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, key string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, key string, size int)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from HTTP client operations.
type HTTPHooks interface {
	// OnRequest records an outgoing HTTP request.
	OnRequest(ctx context.Context, method, host, path string)

	// OnResponse records an HTTP response.
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)

	// OnError records an HTTP error (network failure, timeout).
	OnError(ctx context.Context, method, host, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopRetryHooks is a no-op implementation of RetryHooks.
type NoopRetryHooks struct{}

func (NoopRetryHooks) OnRetry(context.Context, string, int, time.Duration, error) {}
func (NoopRetryHooks) OnGiveUp(context.Context, string, int, error)               {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	retryHooks RetryHooks = NoopRetryHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetRetryHooks registers custom retry hooks.
// This should be called once at application startup before any fetches.
func SetRetryHooks(h RetryHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		retryHooks = h
	}
}

// SetCacheHooks registers custom cache hooks.
// This should be called once at application startup before any cache operations.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before any HTTP operations.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Retry returns the registered retry hooks.
func Retry() RetryHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return retryHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	retryHooks = NoopRetryHooks{}
	cacheHooks = NoopCacheHooks{}
	httpHooks = NoopHTTPHooks{}
}
