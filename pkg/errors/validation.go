package errors

import (
	"net/url"
	"strconv"
	"strings"
	"unicode"
)

// ValidateAssetPath validates a request path relative to the asset root.
// It prevents path traversal and rejects paths the static host should never
// resolve against the filesystem.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateAssetPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidInput, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidInput, "path cannot contain backslashes")
	}

	return nil
}

// ValidateBaseURL validates the API origin used by the fetch client.
// It must be an absolute http or https URL with a host and no query string.
func ValidateBaseURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "base URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "base URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidConfig, err, "invalid base URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidConfig, "base URL %q has no host", rawURL)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return New(ErrCodeInvalidConfig, "base URL %q must not carry a query or fragment", rawURL)
	}

	return nil
}

// ValidatePort validates a TCP port given as a decimal string.
func ValidatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil {
		return New(ErrCodeInvalidConfig, "port %q is not a number", port)
	}
	if n < 1 || n > 65535 {
		return New(ErrCodeInvalidConfig, "port %d out of range (1-65535)", n)
	}
	return nil
}
