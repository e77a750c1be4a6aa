package models

import "time"

// User represents an account entity used for authentication.
// Identity is the username; the password is stored only as a bcrypt hash.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the unique user login identifier.
	Username string `json:"username" validate:"required"`

	// Password holds the plain-text password received from the client.
	// It is only populated on inbound register/login requests and never stored.
	Password string `json:"password,omitempty" validate:"required"`

	// PasswordHash is the bcrypt digest of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
