package entities

import "time"

// URL represents a shortened URL entity in the database
type URL struct {
	ID          string     `json:"id"` // UUID
	OriginalURL string     `json:"original_url"`
	ShortCode   string     `json:"short_code"`
	UserID      *string    `json:"user_id,omitempty"` // Nullable; URLs survive their owner
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"` // Pointer allows nil (no expiration)
	ClickCount  int        `json:"click_count"`
	IsActive    bool       `json:"is_active"`
}
