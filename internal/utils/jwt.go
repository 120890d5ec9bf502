package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/formit/auth-service/models"
	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors returned by [ValidateAndParseJWTToken]. The distinction
// matters only for internal diagnostics; the API boundary collapses all of
// them into one generic invalid-token condition.
var (
	// ErrTokenExpired is returned when the "exp" claim lies in the past.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalidSignature is returned when the signature does not
	// verify against the sign key (a tampered or foreign token).
	ErrTokenInvalidSignature = errors.New("token signature is invalid")

	// ErrTokenWrongPurpose is returned when the token verifies but its
	// purpose claim does not match the purpose expected by the caller.
	ErrTokenWrongPurpose = errors.New("token purpose mismatch")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - purpose:         restricts which operation may consume the token
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Parameters:
//
//	issuer        - identifier of the token issuer (e.g. service name)
//	subject       - ID of the user the token is issued for
//	purpose       - consuming operation tag (models.TokenPurpose*)
//	tokenDuration - how long the token remains valid
//	signKey       - secret key used to sign the token with HMAC-SHA256
//
// Returns:
//
//	models.Token - contains the signed token string and the jwt.Token object
//	error        - non-nil if parameters are invalid or signing fails
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("auth-service", user.ID, models.TokenPurposeSession, 24*time.Hour, "secret")
func GenerateJWTToken(issuer, subject, purpose string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || subject == "" || purpose == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := models.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Purpose: purpose,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, TokenClaims: claims, SignedString: tokenString, UserID: subject}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Purpose claim check against expectedPurpose
//   - Subject (sub) claim presence
//
// Parameters:
//
//	tokenString     - the raw signed JWT string to validate and parse
//	tokenSignKey    - secret key used to verify the token signature
//	tokenIssuer     - expected issuer value to validate against the iss claim
//	expectedPurpose - purpose tag the consuming operation requires
//
// Returns:
//
//	models.Token - contains the parsed jwt.Token object and the extracted UserID
//	error        - ErrTokenExpired, ErrTokenInvalidSignature, ErrTokenWrongPurpose,
//	               or a wrapped parse error for any other validation failure
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "auth-service", models.TokenPurposeSession)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, expectedPurpose string) (models.Token, error) {
	claims := &models.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalidSignature, err)
		default:
			return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
		}
	}

	if claims.Purpose != expectedPurpose {
		return models.Token{}, fmt.Errorf("%w: got %q, want %q", ErrTokenWrongPurpose, claims.Purpose, expectedPurpose)
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during getting subject from token: %w", err)
	}
	if subject == "" {
		return models.Token{}, errors.New("empty subject error")
	}

	return models.Token{Token: token, TokenClaims: *claims, SignedString: tokenString, UserID: subject}, nil
}
