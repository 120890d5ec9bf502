package models

import "time"

// OTPSecret is the shared TOTP secret enrolled for a user. At most one row
// exists per user; re-enrollment replaces the previous secret.
type OTPSecret struct {
	// UserID is the owning user. Unique: one secret per account.
	UserID string `json:"-"`

	// Secret is the base32-encoded shared secret. It is returned to the
	// client exactly once, at enrollment, and is not recoverable later.
	Secret string `json:"-"`

	// CreatedAt is the enrollment timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the OTPSecret model.
func (s OTPSecret) TableName() string {
	return "otp_secrets"
}
