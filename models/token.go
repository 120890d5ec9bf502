package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token purposes. The purpose claim restricts which operation may consume a
// token: a session token cannot be used to verify an email address and vice
// versa.
const (
	// TokenPurposeSession marks tokens issued at login and accepted by the
	// authentication middleware.
	TokenPurposeSession = "session"

	// TokenPurposeEmailVerification marks single-purpose tokens embedded in
	// the verification link sent at registration.
	TokenPurposeEmailVerification = "email_verification"
)

// TokenClaims is the JWT claim set carried by every token issued by this
// service: the standard registered claims plus the purpose tag.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Purpose restricts which operation may consume the token.
	// One of [TokenPurposeSession] or [TokenPurposeEmailVerification].
	Purpose string `json:"purpose"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access (subject, expiry, purpose).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers,
// cookies, or verification links.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// An internal server-side cache avoiding repeated claim lookups.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
