package service

import "errors"

// Business-rule errors. Controllers map these to HTTP statuses with
// errors.Is; anything else is an internal error.
var (
	ErrUserExists         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrConflict           = errors.New("operation conflicts with stored state")
	ErrCodeTaken          = errors.New("short code already exists")
	ErrURLNotFound        = errors.New("short code does not exist or is no longer active")
	ErrURLExpired         = errors.New("URL expired")
	ErrInvalidToken       = errors.New("invalid token")
)
