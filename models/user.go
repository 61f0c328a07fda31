package models

import "time"

// User represents a registered account.
// The password hash never leaves the server; it is excluded from JSON.
type User struct {
	// UserID is the server-assigned identifier (UUID string).
	// It becomes the "_id" claim of issued tokens.
	UserID string `json:"_id"`

	// UserName is the unique login name chosen at registration.
	UserName string `json:"userName"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the request body accepted by the register and login routes.
//
// Password2 is the confirmation field used only during registration.
type Credentials struct {
	UserName  string `json:"userName"`
	Password  string `json:"password"`
	Password2 string `json:"password2,omitempty"`
}
