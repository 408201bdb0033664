// Package integrations provides the HTTP client used to talk to the blog API.
//
// # Overview
//
// [Client] implements the resource-fetching contract every endpoint builds on:
// issue a GET, retry transient failures, decode JSON, and surface one
// classified error when all attempts fail. Endpoint-specific clients live in
// subpackages:
//
//   - [placeholder]: posts, users and comments from JSONPlaceholder
//
// # Failure Classification
//
// Each attempt fails in exactly one of three ways, all of which are retried:
//
//   - network error: the transport produced no response (DNS, refused, reset)
//   - HTTP status error: a response arrived with a status outside 2xx
//   - parse error: a 2xx response whose body is not valid JSON for the target
//
// When the last attempt fails, network errors are replaced by a connectivity
// message suitable for end users; the other classes propagate unchanged. See
// [errors.Code] for the codes attached to each class.
//
// # Retry
//
// The default policy makes 3 attempts and waits attempt × 1s between them
// (1s, then 2s). Use [Client.WithRetryPolicy] to change the ceiling, the
// backoff strategy, or to substitute the sleep function in tests.
//
// # Caching
//
// A [cache.Cache] may be attached to serve repeated requests without network
// I/O. The default is a [cache.NullCache], so every call goes to the network.
//
// [placeholder]: github.com/matzehuels/blogscope/pkg/integrations/placeholder
// [errors.Code]: github.com/matzehuels/blogscope/pkg/errors.Code
// [cache.Cache]: github.com/matzehuels/blogscope/pkg/cache.Cache
// [cache.NullCache]: github.com/matzehuels/blogscope/pkg/cache.NullCache
package integrations
