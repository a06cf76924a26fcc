package service

import (
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"snipr-be/internal/repository/mocks"
	"snipr-be/internal/token"
)

func TestRevoke_PersistsTokenWithItsExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTokenRepository(ctrl)
	tokens := newTestTokenService()
	svc := NewBlacklistService(repo, tokens)

	signed, err := tokens.IssueAccessToken(token.Identity{UserID: "u-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	repo.EXPECT().Insert(signed, gomock.Any()).
		DoAndReturn(func(tokenString string, expiresAt time.Time) error {
			want := time.Now().Add(time.Hour)
			if d := expiresAt.Sub(want); d < -time.Minute || d > time.Minute {
				t.Errorf("stored expiry off by %v", d)
			}
			return nil
		})

	if err := svc.Revoke(signed); err != nil {
		t.Fatalf("revoke: %v", err)
	}
}

func TestRevoke_ExpiredTokenStillRevocable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTokenRepository(ctrl)
	expired := token.NewService("test-secret", -time.Minute, 24*time.Hour)
	svc := NewBlacklistService(repo, expired)

	signed, err := expired.IssueAccessToken(token.Identity{UserID: "u-1"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	repo.EXPECT().Insert(signed, gomock.Any()).Return(nil)

	if err := svc.Revoke(signed); err != nil {
		t.Fatalf("revoke: %v", err)
	}
}

func TestRevoke_UndecodableToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTokenRepository(ctrl)
	svc := NewBlacklistService(repo, newTestTokenService())

	// No Insert expectation: nothing is persisted for garbage
	if err := svc.Revoke("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken, got %v", err)
	}
}

func TestIsRevoked_Passthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTokenRepository(ctrl)
	svc := NewBlacklistService(repo, newTestTokenService())

	repo.EXPECT().Exists("some-token").Return(true, nil)

	revoked, err := svc.IsRevoked("some-token")
	if err != nil || !revoked {
		t.Errorf("expected revoked=true, got %v %v", revoked, err)
	}
}

func TestPurgeExpired_UsesCurrentTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTokenRepository(ctrl)
	svc := NewBlacklistService(repo, newTestTokenService())

	repo.EXPECT().DeleteExpired(gomock.Any()).
		DoAndReturn(func(now time.Time) (int64, error) {
			if d := time.Since(now); d < -time.Second || d > time.Second {
				t.Errorf("purge cutoff not current: off by %v", d)
			}
			return 3, nil
		})

	n, err := svc.PurgeExpired()
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 purged, got %d", n)
	}
}
