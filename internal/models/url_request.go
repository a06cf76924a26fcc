package models

// CreateURLRequest represents the request body for creating a short URL
type CreateURLRequest struct {
	OriginalURL string  `json:"original_url" binding:"required,url"`
	ShortCode   *string `json:"short_code,omitempty"` // Optional custom short code
}
