package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable to the
	// caller so the API cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is the single condition surfaced for any token
	// verification failure: bad signature, expiry, or wrong purpose.
	// The distinction is logged for diagnostics but never returned.
	ErrInvalidToken = errors.New("token is expired or invalid")

	// ErrInvalidOTPCode is returned when disabling two-factor with a code
	// that does not verify against the current secret.
	ErrInvalidOTPCode = errors.New("invalid otp code")

	// ErrOTPAlreadyEnabled is returned when enrollment is attempted on an
	// account that already has two-factor enabled.
	ErrOTPAlreadyEnabled = errors.New("otp already enabled for this user")

	// ErrOTPNotEnabled is returned when a code check or disablement is
	// attempted on an account without two-factor enrolled.
	ErrOTPNotEnabled = errors.New("otp not enabled for this user")

	// ErrUserNotFound is returned when an operation references a user id
	// that no longer resolves to an account, such as a session token for a
	// deleted user.
	ErrUserNotFound = errors.New("user not found")

	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrMailDelivery is returned by the explicit mail-test operation when
	// the transport fails. Registration mail never surfaces this error;
	// its delivery failures are logged and swallowed.
	ErrMailDelivery = errors.New("mail delivery failed")
)
