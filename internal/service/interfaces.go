// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"

	"github.com/formit/auth-service/models"
)

// AuthService covers account lifecycle and session management: sign up,
// sign in, email verification and session token handling.
type AuthService interface {
	// Register creates a new account with an Unverified email and sends a
	// verification email on a best-effort basis. Delivery failure is
	// logged and never fails the registration.
	Register(ctx context.Context, email, password, name string) (models.User, error)

	// Login checks the credentials and returns a signed session token
	// together with the account. Unknown email and wrong password both
	// yield ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (models.Token, models.User, error)

	// VerifyEmail consumes an email-verification token and flips the
	// account to Verified. Verifying an already verified account is a
	// no-op success.
	VerifyEmail(ctx context.Context, tokenString string) (models.User, error)

	// CurrentUser resolves a user id from a validated session token to the
	// stored account.
	CurrentUser(ctx context.Context, userID string) (models.User, error)

	// ParseSessionToken validates a raw session token string and returns
	// its parsed form. Any failure is reported as ErrInvalidToken.
	ParseSessionToken(ctx context.Context, tokenString string) (models.Token, error)
}

// OTPService covers time-based one-time-password enrollment and checks.
type OTPService interface {
	// Enable enrolls a fresh TOTP secret for the user and returns the
	// secret, the otpauth provisioning URI and a QR code data URI.
	Enable(ctx context.Context, userID string) (models.EnrollmentResponse, error)

	// Verify checks a six-digit code against the user's enrolled secret.
	// A wrong code is a valid outcome, not an error.
	Verify(ctx context.Context, userID, code string) (bool, error)

	// Disable removes the enrolled secret after confirming the caller
	// still controls the authenticator via a valid code.
	Disable(ctx context.Context, userID, code string) error
}

// MailService exposes the operational mail-delivery check.
type MailService interface {
	SendTestEmail(ctx context.Context, toEmail string) error
}

// MailTransport is what AuthService and MailService need from the SMTP
// layer. Implemented by mail.Transport.
type MailTransport interface {
	SendVerification(ctx context.Context, toEmail, name, token string) error
	SendTest(ctx context.Context, toEmail string) error
}

// TOTPEngine is what OTPService needs from the TOTP layer. Implemented
// by totp.Engine.
type TOTPEngine interface {
	GenerateSecret(accountLabel string) (secret string, provisioningURI string, err error)
	VerifyCode(secret, code string) (bool, error)
	QRCodeDataURI(provisioningURI string) (string, error)
}

// PasswordHasher is what AuthService needs from the credential-hashing
// layer. Implemented by crypto.PasswordHasher.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}
