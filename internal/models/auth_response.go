package models

// UserSummary is the abbreviated identity returned with a login response
type UserSummary struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Message      string      `json:"message"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         UserSummary `json:"user"`
}

// AccessTokenResponse represents the response for a token refresh
type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}
