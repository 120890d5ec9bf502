package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user, generated by the service
	// at creation time (UUID v7). Immutable for the lifetime of the account.
	ID string `json:"id"`

	// Email is the unique login key of the account.
	// Stored case-sensitively, exactly as provided at registration.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never serialized; the plaintext password never reaches this struct.
	PasswordHash string `json:"-"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// EmailVerified reports whether the account's email address has been
	// confirmed via the verification link. Starts false, flips to true
	// exactly once; there is no path back.
	EmailVerified bool `json:"email_verified"`

	// OTPEnabled reports whether TOTP two-factor authentication is
	// currently enrolled for the account.
	OTPEnabled bool `json:"otp_enabled"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed on every mutation of the account row.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Summary returns the public projection of the user used in login
// responses: identity attributes only, no credential or status fields.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}
