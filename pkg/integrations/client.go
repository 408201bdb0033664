package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/blogscope/pkg/cache"
	errs "github.com/matzehuels/blogscope/pkg/errors"
	"github.com/matzehuels/blogscope/pkg/httputil"
	"github.com/matzehuels/blogscope/pkg/observability"
)

// Client provides shared HTTP functionality for API clients.
// It handles retry, response caching, and common request headers.
//
// A Client holds no per-request state and is safe for concurrent use once
// configured; construct one at startup and pass it to whatever needs it.
type Client struct {
	http    *http.Client
	cache   cache.Cache
	ttl     time.Duration
	headers map[string]string
	retry   httputil.Policy
	logger  *log.Logger
}

// NewClient creates a Client that caches response bodies in c under keys
// prefixed with prefix, for ttl. Pass nil for c to disable caching and nil
// for headers if no default headers are needed.
func NewClient(c cache.Cache, prefix string, ttl time.Duration, headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		cache:   cache.Scoped(c, prefix),
		ttl:     ttl,
		headers: headers,
		retry:   httputil.DefaultPolicy(),
		logger:  log.Default(),
	}
}

// WithHTTPClient replaces the underlying transport client.
func (c *Client) WithHTTPClient(h *http.Client) *Client {
	if h != nil {
		c.http = h
	}
	return c
}

// WithHeader adds a header sent with every request.
func (c *Client) WithHeader(key, value string) *Client {
	if c.headers == nil {
		c.headers = make(map[string]string)
	}
	c.headers[key] = value
	return c
}

// WithRetryPolicy replaces the retry policy. Policy.OnRetry is overwritten
// per request to emit logs and hooks.
func (c *Client) WithRetryPolicy(p httputil.Policy) *Client {
	c.retry = p
	return c
}

// WithLogger sets the logger used for retry warnings and cache diagnostics.
func (c *Client) WithLogger(l *log.Logger) *Client {
	if l != nil {
		c.logger = l
	}
	return c
}

// FetchResource GETs url and JSON-decodes the body into v, retrying every
// failure class up to the policy's ceiling.
//
// On terminal failure the returned error is an *errors.Error with code
// NETWORK_ERROR (connectivity message), HTTP_STATUS (with an
// *errors.StatusError in its chain), PARSE_ERROR or RETRIES_EXHAUSTED.
// Context cancellation during a backoff wait returns ctx.Err().
func (c *Client) FetchResource(ctx context.Context, url string, v any) error {
	if c.fromCache(ctx, url, v) {
		return nil
	}

	policy := c.retry
	policy.OnRetry = func(attempt int, delay time.Duration, err error) {
		c.logger.Warn("fetch failed, retrying", "url", url, "attempt", attempt, "delay", delay, "err", errs.UserMessage(err))
		observability.Retry().OnRetry(ctx, url, attempt, delay, err)
	}

	var (
		body     []byte
		attempts int
	)
	err := httputil.Retry(ctx, policy, func(int) error {
		attempts++
		b, err := c.attempt(ctx, url, v)
		if err != nil {
			return err
		}
		body = b
		return nil
	})
	if err != nil {
		err = terminalError(err)
		observability.Retry().OnGiveUp(ctx, url, attempts, err)
		return err
	}

	c.toCache(ctx, url, body)
	return nil
}

// attempt performs one request/decode cycle. Every classified failure is
// wrapped as retryable.
func (c *Client) attempt(ctx context.Context, url string, v any) ([]byte, error) {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := decode(body, v); err != nil {
		return nil, httputil.Retryable(errs.Wrap(errs.ErrCodeParse, err, "invalid JSON response from %s", url))
	}
	return body, nil
}

// decode unmarshals data into a fresh value and stores it in v only on
// success, so a failed decode never leaves partial fields behind.
func decode(data []byte, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return json.Unmarshal(data, v)
	}
	fresh := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(data, fresh.Interface()); err != nil {
		return err
	}
	rv.Elem().Set(fresh.Elem())
	return nil
}

func (c *Client) doRequest(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidInput, err, "invalid request URL %q", url)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	host, path := req.URL.Host, req.URL.Path
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodGet, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, http.MethodGet, host, path, err)
		return nil, httputil.Retryable(errs.Wrap(errs.ErrCodeNetwork, err, "network error"))
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode, resp.Status); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, httputil.Retryable(errs.Wrap(errs.ErrCodeNetwork, err, "network error reading response body"))
	}
	return body, nil
}

func checkStatus(code int, status string) error {
	if code >= 200 && code < 300 {
		return nil
	}
	text := statusText(code, status)
	return httputil.Retryable(errs.Wrap(errs.ErrCodeHTTPStatus,
		&errs.StatusError{StatusCode: code, StatusText: text},
		"HTTP error: %d %s", code, text))
}

// terminalError maps the last attempt's failure to what callers see.
func terminalError(err error) error {
	if errors.Is(err, httputil.ErrExhausted) {
		return errs.Wrap(errs.ErrCodeExhausted, err, "all retry attempts failed")
	}

	var e *errs.Error
	if errors.As(err, &e) && e.Code == errs.ErrCodeNetwork {
		return errs.Wrap(errs.ErrCodeNetwork, e.Cause, ConnectivityMessage)
	}

	var re *httputil.RetryableError
	if errors.As(err, &re) {
		return re.Err
	}
	return err
}

func (c *Client) fromCache(ctx context.Context, url string, v any) bool {
	data, hit, err := c.cache.Get(ctx, url)
	if err != nil {
		c.logger.Debug("cache read failed", "url", url, "err", err)
		return false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, url)
		return false
	}
	if err := decode(data, v); err != nil {
		c.logger.Debug("discarding undecodable cache entry", "url", url, "err", err)
		_ = c.cache.Delete(ctx, url)
		return false
	}
	observability.Cache().OnCacheHit(ctx, url)
	return true
}

func (c *Client) toCache(ctx context.Context, url string, body []byte) {
	if err := c.cache.Set(ctx, url, body, c.ttl); err != nil {
		c.logger.Debug("cache write failed", "url", url, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, url, len(body))
}
