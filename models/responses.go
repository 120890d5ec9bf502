package models

// UserSummary is the public projection of a user returned from the login
// endpoint alongside the session token.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// LoginResponse is the body returned from a successful login: the signed
// session token and the identity of the authenticated user.
type LoginResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

// MeResponse is the body returned from the current-user endpoint.
type MeResponse struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	EmailVerified bool   `json:"email_verified"`
}

// EnrollmentResponse is the body returned from OTP enrollment. The secret is
// disclosed exactly once here; losing it requires re-enrollment.
type EnrollmentResponse struct {
	// Secret is the base32-encoded shared secret for manual entry.
	Secret string `json:"secret"`

	// ProvisioningURI is the otpauth:// URI encoding the secret, issuer and
	// account label for authenticator apps.
	ProvisioningURI string `json:"provisioning_uri"`

	// QRCode is the provisioning URI rendered as a base64 PNG data URI,
	// suitable for direct embedding in an <img> tag.
	QRCode string `json:"qr_code"`
}

// VerifyOTPResponse reports the outcome of a code check. A wrong code is a
// valid, expected outcome, not an error.
type VerifyOTPResponse struct {
	Valid bool `json:"valid"`
}

// StatusResponse is the generic success envelope for operations with no
// meaningful payload.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the uniform error envelope rendered by the HTTP boundary.
// Code is a stable machine-readable identifier; Message is human-oriented.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}
