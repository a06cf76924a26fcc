package service

import (
	"fmt"
	"time"

	"snipr-be/internal/repository"
	"snipr-be/internal/token"
)

// BlacklistService tracks revoked tokens. Revocation stores the raw token
// string together with its natural expiry so the purge job knows when an
// entry stops mattering.
type BlacklistService interface {
	Revoke(tokenString string) error
	IsRevoked(tokenString string) (bool, error)
	PurgeExpired() (int64, error)
}

type blacklistService struct {
	repo   repository.TokenRepository
	tokens *token.Service
}

// NewBlacklistService creates a new blacklist service
func NewBlacklistService(repo repository.TokenRepository, tokens *token.Service) BlacklistService {
	return &blacklistService{repo: repo, tokens: tokens}
}

// Revoke decodes the token to extract its expiry and persists it. An
// undecodable token fails with ErrInvalidToken. Revoking the same token
// again is a no-op.
func (s *blacklistService) Revoke(tokenString string) error {
	claims, err := s.tokens.Decode(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return ErrInvalidToken
	}

	if err := s.repo.Insert(tokenString, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been revoked
func (s *blacklistService) IsRevoked(tokenString string) (bool, error) {
	return s.repo.Exists(tokenString)
}

// PurgeExpired removes blacklist entries whose expiry is strictly before
// now. Intended to run off the request path; callers log the result.
func (s *blacklistService) PurgeExpired() (int64, error) {
	return s.repo.DeleteExpired(time.Now())
}
