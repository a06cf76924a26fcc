package token

import (
	"errors"
	"testing"
	"time"
)

func newTestService() *Service {
	return NewService("test-secret", time.Hour, 24*time.Hour)
}

func TestIssueAccessToken_VerifyRoundTrip(t *testing.T) {
	svc := newTestService()
	identity := Identity{UserID: "u-1", Username: "dana", Email: "dana@example.com"}

	signed, err := svc.IssueAccessToken(identity)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Refresh {
		t.Error("access token must not carry the refresh flag")
	}
	if claims.User != identity {
		t.Errorf("identity mismatch: got %+v", claims.User)
	}
	if claims.ID == "" {
		t.Error("expected a JTI")
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Error("expected a future expiry")
	}
}

func TestIssueRefreshToken_SetsRefreshFlag(t *testing.T) {
	svc := newTestService()

	signed, err := svc.IssueRefreshToken(Identity{UserID: "u-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Verify(signed)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !claims.Refresh {
		t.Error("refresh token must carry the refresh flag")
	}
}

func TestIssue_UniqueJTIs(t *testing.T) {
	svc := newTestService()
	identity := Identity{UserID: "u-1"}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		signed, err := svc.IssueAccessToken(identity)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		claims, err := svc.Verify(signed)
		if err != nil {
			t.Fatalf("verify: %v", err)
		}
		if seen[claims.ID] {
			t.Fatalf("duplicate JTI %q", claims.ID)
		}
		seen[claims.ID] = true
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Minute, 24*time.Hour)

	signed, err := svc.IssueAccessToken(Identity{UserID: "u-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := svc.Verify(signed); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestVerify_MalformedToken(t *testing.T) {
	svc := newTestService()

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Verify(tokenString); !errors.Is(err, ErrMalformedToken) {
			t.Errorf("Verify(%q): expected ErrMalformedToken, got %v", tokenString, err)
		}
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	signed, err := newTestService().IssueAccessToken(Identity{UserID: "u-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	other := NewService("other-secret", time.Hour, 24*time.Hour)
	if _, err := other.Verify(signed); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("expected ErrMalformedToken, got %v", err)
	}
}

func TestDecode_AcceptsExpiredToken(t *testing.T) {
	svc := NewService("test-secret", -time.Minute, 24*time.Hour)

	signed, err := svc.IssueAccessToken(Identity{UserID: "u-1", Email: "dana@example.com"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := svc.Decode(signed)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.User.Email != "dana@example.com" {
		t.Errorf("unexpected identity: %+v", claims.User)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.Before(time.Now()) {
		t.Error("expected a past expiry")
	}
}

func TestDecode_RejectsGarbage(t *testing.T) {
	if _, err := newTestService().Decode("not-a-jwt"); !errors.Is(err, ErrMalformedToken) {
		t.Errorf("expected ErrMalformedToken, got %v", err)
	}
}
