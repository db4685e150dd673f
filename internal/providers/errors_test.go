package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestNotFoundErrorMessage(t *testing.T) {
	err := &NotFoundError{Provider: "sleeper", Resource: "league 123"}
	if got := err.Error(); got != "sleeper: league 123 not found" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAsNotFoundErrorUnwraps(t *testing.T) {
	inner := &NotFoundError{Provider: "sleeper", Resource: "user ghost"}
	wrapped := fmt.Errorf("resolving league: %w", inner)

	nf, ok := AsNotFoundError(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if nf.Resource != "user ghost" {
		t.Fatalf("unexpected resource %q", nf.Resource)
	}

	if _, ok := AsNotFoundError(errors.New("plain")); ok {
		t.Fatal("expected plain error to not unwrap")
	}
}

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{StatusCode: 429, RetryAfter: time.Second}
	if got := err.Error(); got != "provider rate limited (status=429)" {
		t.Fatalf("unexpected message %q", got)
	}

	custom := &RateLimitError{Message: "slow down"}
	if got := custom.Error(); got != "slow down" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	inner := &RateLimitError{StatusCode: 429}
	wrapped := fmt.Errorf("fetching matchups: %w", inner)

	rl, ok := AsRateLimitError(wrapped)
	if !ok {
		t.Fatal("expected unwrap to succeed")
	}
	if rl.StatusCode != 429 {
		t.Fatalf("unexpected status %d", rl.StatusCode)
	}
}
