package models

// SignupRequest represents the request body for user signup. The
// hashed_password field carries the plaintext password on the wire; it is
// hashed server-side before it ever reaches the database.
type SignupRequest struct {
	FirstName    string `json:"first_name" binding:"required"`
	LastName     string `json:"last_name" binding:"required"`
	Username     string `json:"username" binding:"required"`
	EmailAddress string `json:"email_address" binding:"required,email"`
	Password     string `json:"hashed_password" binding:"required,min=6"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	UsernameOrEmail string `json:"username_or_email" binding:"required"`
	Password        string `json:"password" binding:"required"`
}
