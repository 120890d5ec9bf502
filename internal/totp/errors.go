package totp

import "errors"

var (
	// ErrFailedToGenerateSecret is returned when the system randomness
	// source fails while generating a new shared secret.
	ErrFailedToGenerateSecret = errors.New("failed to generate TOTP secret")

	// ErrInvalidSecret is returned when a stored or submitted secret is not
	// valid base32.
	ErrInvalidSecret = errors.New("invalid TOTP secret")

	// ErrInvalidCodeFormat is returned when a submitted code is not a
	// six-digit string. A well-formed but wrong code is not an error.
	ErrInvalidCodeFormat = errors.New("invalid OTP code format")

	// ErrFailedToGenerateQRCode is returned when the provisioning URI cannot
	// be rendered as a QR image.
	ErrFailedToGenerateQRCode = errors.New("failed to generate QR code")
)
