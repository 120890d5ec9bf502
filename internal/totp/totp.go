// Package totp implements the time-based one-time password algorithm
// (RFC 6238 over the RFC 4226 HOTP construction) used for two-factor
// enrollment and verification.
//
// Codes are six decimal digits derived from an HMAC-SHA1 over the current
// 30-second time step. Verification tolerates one step of clock skew in
// either direction. There is no replay-window bookkeeping: a code is
// accepted for its full validity window each time it is submitted.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"
)

const (
	// DefaultDigits is the number of digits in a generated code.
	DefaultDigits = 6

	// DefaultPeriod is the length of one time step in seconds.
	DefaultPeriod = 30

	// DefaultSkewSteps is how many adjacent time steps are accepted on
	// either side of the current one during verification.
	DefaultSkewSteps = 1

	// secretLength is the raw secret size in bytes. 20 bytes gives 160 bits
	// of entropy, the RFC 4226 recommendation.
	secretLength = 20

	// qrImageSize is the side length in pixels of the generated QR PNG.
	qrImageSize = 256
)

var (
	// validSecretRegex ensures base32 format: uppercase A-Z, digits 2-7,
	// optional padding.
	validSecretRegex = regexp.MustCompile("^[A-Z2-7]+=*$")

	// validCodeRegex matches a six-digit submitted code.
	validCodeRegex = regexp.MustCompile(`^\d{6}$`)
)

// Engine generates shared secrets, provisioning URIs, and verifies submitted
// codes. The issuer is the service name displayed in authenticator apps.
// Engine is stateless apart from the issuer and safe for concurrent use.
type Engine struct {
	issuer string
}

// NewEngine constructs an Engine labelling provisioning URIs with issuer.
func NewEngine(issuer string) *Engine {
	return &Engine{issuer: issuer}
}

// GenerateSecret creates a fresh 160-bit random secret for accountLabel
// (typically the user's email) and returns it base32-encoded together with
// the otpauth:// provisioning URI authenticator apps can import.
func (e *Engine) GenerateSecret(accountLabel string) (string, string, error) {
	raw := make([]byte, secretLength)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrFailedToGenerateSecret, err)
	}

	secret := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(raw)

	return secret, e.provisioningURI(secret, accountLabel), nil
}

// provisioningURI builds a Key Uri Format string:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func (e *Engine) provisioningURI(secret, accountLabel string) string {
	label := fmt.Sprintf("%s:%s",
		url.PathEscape(e.issuer),
		url.PathEscape(accountLabel),
	)

	query := url.Values{}
	query.Set("secret", secret)
	query.Set("issuer", e.issuer)
	query.Set("algorithm", "SHA1")
	query.Set("digits", fmt.Sprintf("%d", DefaultDigits))
	query.Set("period", fmt.Sprintf("%d", DefaultPeriod))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode())
}

// VerifyCode reports whether the submitted code is valid for the secret at
// the current time. Codes for the previous, current, and next time step are
// all accepted to handle clock drift between the server and the
// authenticator device.
//
// A syntactically valid but wrong code reports (false, nil): a wrong code is
// an expected outcome, not an error. Errors are reserved for a malformed
// secret or code.
func (e *Engine) VerifyCode(secret, code string) (bool, error) {
	return verifyCodeAt(secret, code, time.Now())
}

// verifyCodeAt is the clock-injected core of VerifyCode, split out so tests
// can pin the time step.
func verifyCodeAt(secret, code string, now time.Time) (bool, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if !validCodeRegex.MatchString(code) {
		return false, ErrInvalidCodeFormat
	}

	counter := now.Unix() / int64(DefaultPeriod)
	for i := -DefaultSkewSteps; i <= DefaultSkewSteps; i++ {
		if fmt.Sprintf("%06d", hotp(key, counter+int64(i), DefaultDigits)) == code {
			return true, nil
		}
	}

	return false, nil
}

// GenerateCode derives the code for the time step containing t.
// Exposed for tests and for generating codes at specific moments.
func GenerateCode(secret string, t time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	counter := t.Unix() / int64(DefaultPeriod)

	return fmt.Sprintf("%06d", hotp(key, counter, DefaultDigits)), nil
}

// QRCodeDataURI renders the provisioning URI as a base64 PNG data URI,
// suitable for direct embedding in an <img> tag.
func (e *Engine) QRCodeDataURI(provisioningURI string) (string, error) {
	png, err := qrcode.Encode(provisioningURI, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToGenerateQRCode, err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(strings.ToUpper(secret))
	if !validSecretRegex.MatchString(secret) {
		return nil, ErrInvalidSecret
	}

	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecret, err)
	}

	return key, nil
}

// hotp implements the RFC 4226 HMAC-based one-time password algorithm,
// converting a counter value into a numeric code using HMAC-SHA1.
func hotp(key []byte, counter int64, digits int) int {
	// Counter is encoded big-endian into 8 bytes (RFC 4226 requirement).
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter = counter >> 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226): the low nibble of the last byte picks
	// the offset; the MSB is cleared to keep the value positive.
	offset := sum[len(sum)-1] & 0x0f
	code := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]&0xff) << 16) |
		(int(sum[offset+2]&0xff) << 8) |
		(int(sum[offset+3] & 0xff))

	return code % int(math.Pow10(digits))
}
