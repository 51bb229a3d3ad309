package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestBackendErrorMessage(t *testing.T) {
	err := &BackendError{Reason: ReasonQuotaExceeded, Wrapped: errors.New("429 too many requests")}

	msg := err.Error()
	if !strings.Contains(msg, "quota_exceeded") || !strings.Contains(msg, "429 too many requests") {
		t.Fatalf("unexpected message: %q", msg)
	}

	bare := &BackendError{Reason: ReasonEmpty}
	if !strings.Contains(bare.Error(), "empty_response") {
		t.Fatalf("unexpected message: %q", bare.Error())
	}
}

func TestBackendErrorUnwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := fmt.Errorf("calling backend: %w", &BackendError{Reason: ReasonNetworkUnavailable, Wrapped: inner})

	if !errors.Is(err, inner) {
		t.Fatalf("expected wrapped error to be reachable")
	}
	if got := ReasonOf(err); got != ReasonNetworkUnavailable {
		t.Fatalf("expected reason through wrapping, got %q", got)
	}
}

func TestReasonOfPlainError(t *testing.T) {
	if got := ReasonOf(errors.New("boom")); got != ReasonOther {
		t.Fatalf("expected %q for plain errors, got %q", ReasonOther, got)
	}
	if got := ReasonOf(nil); got != ReasonOther {
		t.Fatalf("expected %q for nil, got %q", ReasonOther, got)
	}
}

func TestDisabling(t *testing.T) {
	t.Parallel()

	tests := []struct {
		reason Reason
		want   bool
	}{
		{reason: ReasonAuthInvalid, want: true},
		{reason: ReasonQuotaExceeded, want: true},
		{reason: ReasonNetworkUnavailable, want: false},
		{reason: ReasonEmpty, want: false},
		{reason: ReasonOther, want: false},
	}

	for _, tt := range tests {
		err := &BackendError{Reason: tt.reason}
		if got := Disabling(err); got != tt.want {
			t.Fatalf("Disabling(%q) = %v, expected %v", tt.reason, got, tt.want)
		}
	}
}

func TestAbsentGenerator(t *testing.T) {
	g := Absent()

	_, err := g.GenerateContent(context.Background(), "anything")
	if err == nil {
		t.Fatalf("expected an error")
	}
	if got := ReasonOf(err); got != ReasonAuthInvalid {
		t.Fatalf("expected %q, got %q", ReasonAuthInvalid, got)
	}
	if !Disabling(err) {
		t.Fatalf("expected absent backend failures to be disabling")
	}
	if g.Model() != "" {
		t.Fatalf("expected empty model name, got %q", g.Model())
	}
}
