package entities

import "time"

// User represents a user entity in the database
type User struct {
	ID             string    `json:"id"` // UUID
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Username       string    `json:"username"`
	EmailAddress   string    `json:"email_address"`
	HashedPassword string    `json:"-"` // Don't expose password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}
