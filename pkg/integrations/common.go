package integrations

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const httpTimeout = 10 * time.Second

// ConnectivityMessage is the user-facing message for a fetch whose every
// attempt failed at the transport level.
const ConnectivityMessage = "network error: please check your internet connection"

// NewHTTPClient creates an HTTP client with a standard timeout for API requests.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// JoinURL appends path to base, collapsing a duplicate slash at the seam.
func JoinURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// statusText extracts the reason phrase from resp.Status ("404 Not Found"),
// falling back to the standard text for the code.
func statusText(code int, status string) string {
	if text, ok := strings.CutPrefix(status, strconv.Itoa(code)); ok {
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return http.StatusText(code)
}
