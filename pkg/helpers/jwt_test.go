package helpers

import (
	"testing"
	"time"

	"github.com/adityawp/casaly/internal/apperr"
)

func TestJWTIssueAndParse(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", 4*time.Hour)
	userID := "user-123"

	tok, exp, err := m.Issue(userID)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if until := time.Until(exp); until < 3*time.Hour+59*time.Minute || until > 4*time.Hour {
		t.Fatalf("expiry not ~4h from issuance: %v", until)
	}

	claims, err := m.Parse(tok)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("subject mismatch: got %q want %q", claims.UserID, userID)
	}
}

func TestJWTParse_Expired(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("secret", -1*time.Second)
	tok, _, err := m.Issue("u1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = m.Parse(tok)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("expected Unauthorized kind, got %v", apperr.KindOf(err))
	}
	if apperr.Message(err) != "token expired" {
		t.Fatalf("expected expired message, got %q", apperr.Message(err))
	}
}

func TestJWTParse_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, _, err := NewJWTManager("right-secret", time.Hour).Issue("u2")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewJWTManager("wrong-secret", time.Hour).Parse(tok)
	if err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
	if apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("expected Unauthorized kind, got %v", apperr.KindOf(err))
	}
}

func TestJWTParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := NewJWTManager("k", time.Hour).Parse("not.a.jwt")
	if err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
	if apperr.KindOf(err) != apperr.KindUnauthorized {
		t.Fatalf("expected Unauthorized kind, got %v", apperr.KindOf(err))
	}
}
