package errors

import (
	"errors"
	"testing"
)

func TestNewFormatsMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"sort key", New(ErrCodeInvalidInput, "unknown post sort key %q", "colour"), `INVALID_INPUT: unknown post sort key "colour"`},
		{"config", New(ErrCodeInvalidConfig, "retry.attempts must be at least 1, got %d", 0), "INVALID_CONFIG: retry.attempts must be at least 1, got 0"},
		{"exhausted", New(ErrCodeExhausted, "all retry attempts failed"), "RETRIES_EXHAUSTED: all retry attempts failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if tt.err.Cause != nil {
				t.Errorf("Cause = %v, want nil", tt.err.Cause)
			}
		})
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:1: connect: connection refused")
	err := Wrap(ErrCodeNetwork, cause, "network error: please check your internet connection")

	if err.Code != ErrCodeNetwork {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeNetwork)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	want := "NETWORK_ERROR: network error: please check your internet connection: " + cause.Error()
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	parse := Wrap(ErrCodeParse, errors.New("unexpected end of JSON input"), "invalid JSON response")

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"matching code", parse, ErrCodeParse, true},
		{"other code", parse, ErrCodeHTTPStatus, false},
		{"outermost code wins", Wrap(ErrCodeExhausted, parse, "all retry attempts failed"), ErrCodeExhausted, true},
		{"inner code hidden", Wrap(ErrCodeExhausted, parse, "all retry attempts failed"), ErrCodeParse, false},
		{"plain error", errors.New("plain"), ErrCodeInvalidInput, false},
		{"nil", nil, ErrCodeInvalidInput, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"status", New(ErrCodeHTTPStatus, "HTTP error: 500 Internal Server Error"), ErrCodeHTTPStatus},
		{"plain", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.want {
				t.Errorf("GetCode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"coded", Wrap(ErrCodeNetwork, errors.New("reset"), "network error: please check your internet connection"), "network error: please check your internet connection"},
		{"plain", errors.New("context canceled"), "context canceled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatusError(t *testing.T) {
	t.Run("with status text", func(t *testing.T) {
		err := &StatusError{StatusCode: 503, StatusText: "Service Unavailable"}
		expected := "status 503 Service Unavailable"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("without status text", func(t *testing.T) {
		err := &StatusError{StatusCode: 599}
		expected := "status 599"
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &StatusError{}
		if err.Code() != ErrCodeHTTPStatus {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeHTTPStatus)
		}
	})

	t.Run("reachable through Wrap", func(t *testing.T) {
		wrapped := Wrap(ErrCodeHTTPStatus, &StatusError{StatusCode: 404, StatusText: "Not Found"}, "HTTP error: 404 Not Found")
		var se *StatusError
		if !errors.As(wrapped, &se) {
			t.Fatal("errors.As should find StatusError in chain")
		}
		if se.StatusCode != 404 {
			t.Errorf("StatusCode = %d, want 404", se.StatusCode)
		}
		if UserMessage(wrapped) != "HTTP error: 404 Not Found" {
			t.Errorf("UserMessage() = %q", UserMessage(wrapped))
		}
	})
}
