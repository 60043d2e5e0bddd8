package models

// User represents a single account row in the users table.
// It is both the persistence model and the JSON payload returned by the
// users API. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password stores the user's password exactly as it was submitted.
	// The column is compared verbatim during login. It is never exposed
	// via JSON.
	Password string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// NewUser is the request payload for the create and update operations.
// All three fields replace the stored row as-is; no normalization is applied.
type NewUser struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// LoginUser is the request payload for the login operation.
type LoginUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
