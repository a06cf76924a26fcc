package entities

import "time"

// BlacklistedToken stores a revoked JWT until its natural expiry passes,
// at which point the purge job removes it.
type BlacklistedToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
