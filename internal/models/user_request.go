package models

// UpdateUserRequest represents a partial user update. Only fields present in
// the request body are applied; absent fields keep their stored values.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Username  *string `json:"username,omitempty"`
}
