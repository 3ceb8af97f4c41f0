package translator

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestServiceError_Error(t *testing.T) {
	cause := errors.New("connection refused")
	err := &ServiceError{Service: "google", Message: "request failed", Cause: cause}

	msg := err.Error()
	for _, part := range []string{"google", "request failed", "connection refused"} {
		if !strings.Contains(msg, part) {
			t.Errorf("expected %q in %q", part, msg)
		}
	}
}

func TestServiceError_ErrorWithoutCause(t *testing.T) {
	err := &ServiceError{Service: "mymemory", Message: "quota exceeded"}

	if got := err.Error(); got != "mymemory: quota exceeded" {
		t.Errorf("unexpected message: %q", got)
	}
}

func TestServiceError_Unwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &ServiceError{Service: "google", Message: "request failed", Cause: cause}

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestServiceError_As(t *testing.T) {
	var err error = fmt.Errorf("wrapped: %w", &ServiceError{Service: "google", Message: "boom"})

	var se *ServiceError
	if !errors.As(err, &se) {
		t.Fatal("expected errors.As to match through wrapping")
	}
	if se.Service != "google" {
		t.Errorf("expected service 'google', got %q", se.Service)
	}
}

func TestNewServiceError_PassesThroughExisting(t *testing.T) {
	orig := &ServiceError{Service: "google", Message: "boom"}

	got := NewServiceError("mymemory", "other", orig)
	if got != orig {
		t.Error("expected existing ServiceError to be returned unchanged")
	}
}
