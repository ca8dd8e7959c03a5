package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind Kind
		want int
	}{
		{KindInvalidInput, http.StatusBadRequest},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindForbidden, http.StatusForbidden},
		{KindNotFound, http.StatusNotFound},
		{KindConflict, http.StatusConflict},
		{KindStore, http.StatusInternalServerError},
	}
	for _, c := range cases {
		if got := Status(New(c.kind, "x")); got != c.want {
			t.Errorf("Status(kind=%d) = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestKindOf_Unclassified(t *testing.T) {
	t.Parallel()

	if got := KindOf(errors.New("boom")); got != KindStore {
		t.Fatalf("KindOf(plain error) = %d, want KindStore", got)
	}
}

func TestMessage_OpaqueForUnclassified(t *testing.T) {
	t.Parallel()

	// Store internals must never leak to clients.
	if got := Message(errors.New("pq: connection refused at 10.0.0.3")); got != "internal error" {
		t.Fatalf("Message leaked internals: %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("duplicate key value violates unique constraint")
	err := Wrap(KindConflict, "email already registered", cause)

	if !errors.Is(err, cause) {
		t.Fatal("wrapped cause lost")
	}
	if KindOf(fmt.Errorf("outer: %w", err)) != KindConflict {
		t.Fatal("kind lost through further wrapping")
	}
	if Message(err) != "email already registered" {
		t.Fatalf("unexpected message: %q", Message(err))
	}
}
