package repository

import (
	"database/sql"
	"fmt"
	"time"
)

// TokenRepository persists revoked tokens until their expiry passes
type TokenRepository interface {
	Insert(token string, expiresAt time.Time) error
	Exists(token string) (bool, error)
	DeleteExpired(now time.Time) (int64, error)
}

type tokenRepository struct {
	db *sql.DB
}

// NewTokenRepository creates a new blacklisted-token repository
func NewTokenRepository(db *sql.DB) TokenRepository {
	return &tokenRepository{db: db}
}

// Insert records a revoked token. Revoking the same token twice is a no-op,
// which keeps logout idempotent.
func (r *tokenRepository) Insert(token string, expiresAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO blacklisted_tokens (token, expires_at)
		VALUES ($1, $2)
		ON CONFLICT (token) DO NOTHING
	`, token, expiresAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

// Exists reports whether the token has been revoked
func (r *tokenRepository) Exists(token string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM blacklisted_tokens WHERE token = $1)`, token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %w", err)
	}
	return exists, nil
}

// DeleteExpired removes entries whose expiry is strictly before now and
// returns how many were removed.
func (r *tokenRepository) DeleteExpired(now time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM blacklisted_tokens WHERE expires_at < $1`, now.UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to purge blacklist: %w", err)
	}
	return result.RowsAffected()
}
