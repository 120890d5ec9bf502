package store

import (
	"context"

	"github.com/formit/auth-service/models"
)

// UserRepository is the durable record of users keyed by id and unique email.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// UpdateUser applies the given column changes to the user row and
	// refreshes updated_at. Supported keys: "email_verified", "otp_enabled",
	// "name". Unknown keys are rejected.
	UpdateUser(ctx context.Context, id string, changes map[string]any) error

	DeleteUser(ctx context.Context, id string) error
}

// OTPSecretRepository manages the 1:1 TOTP secret rows and their coupling to
// the user's otp_enabled flag. Enrollment and removal mutate both tables in
// one transaction so the flag and the secret can never drift apart.
type OTPSecretRepository interface {
	// EnrollSecret replaces any existing secret for the user and flips
	// otp_enabled to true, atomically.
	EnrollSecret(ctx context.Context, userID, secret string) error

	// FindSecretByUserID returns the enrolled secret for the user.
	FindSecretByUserID(ctx context.Context, userID string) (models.OTPSecret, error)

	// RemoveSecret deletes the user's secret and flips otp_enabled to
	// false, atomically.
	RemoveSecret(ctx context.Context, userID string) error
}
