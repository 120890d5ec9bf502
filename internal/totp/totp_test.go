package totp

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// rfcSecret is the base32 encoding of the ASCII key "12345678901234567890"
// used by the RFC 6238 reference vectors.
const rfcSecret = "GEZDGNBVGY3TQOJQGEZDGNBVGY3TQOJQ"

// The expected values are the last six digits of the 8-digit SHA-1 reference
// codes from RFC 6238 Appendix B.
func TestGenerateCode_ReferenceVectors(t *testing.T) {
	tests := []struct {
		unix int64
		want string
	}{
		{59, "287082"},
		{1111111109, "081804"},
		{1111111111, "050471"},
		{1234567890, "005924"},
		{2000000000, "279037"},
	}

	for _, tt := range tests {
		code, err := GenerateCode(rfcSecret, time.Unix(tt.unix, 0))
		if err != nil {
			t.Fatalf("unix %d: unexpected error: %v", tt.unix, err)
		}
		if code != tt.want {
			t.Errorf("unix %d: expected code %s, got %s", tt.unix, tt.want, code)
		}
	}
}

func TestVerifyCodeAt_CurrentStep(t *testing.T) {
	now := time.Unix(1111111109, 0)

	code, err := GenerateCode(rfcSecret, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid, err := verifyCodeAt(rfcSecret, code, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected code for the current step to verify")
	}
}

func TestVerifyCodeAt_SkewTolerance(t *testing.T) {
	now := time.Unix(1111111109, 0)

	previous, err := GenerateCode(rfcSecret, now.Add(-DefaultPeriod*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	next, err := GenerateCode(rfcSecret, now.Add(DefaultPeriod*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for name, code := range map[string]string{"previous step": previous, "next step": next} {
		valid, err := verifyCodeAt(rfcSecret, code, now)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if !valid {
			t.Errorf("%s: expected code within skew window to verify", name)
		}
	}
}

func TestVerifyCodeAt_OutsideSkewWindow(t *testing.T) {
	now := time.Unix(1111111109, 0)

	stale, err := GenerateCode(rfcSecret, now.Add(-2*DefaultPeriod*time.Second))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid, err := verifyCodeAt(rfcSecret, stale, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Error("expected code two steps old to be rejected")
	}
}

func TestVerifyCodeAt_WrongCodeIsNotAnError(t *testing.T) {
	valid, err := verifyCodeAt(rfcSecret, "000000", time.Unix(59, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if valid {
		t.Error("expected wrong code to report invalid")
	}
}

func TestVerifyCodeAt_MalformedCode(t *testing.T) {
	for _, code := range []string{"", "12345", "1234567", "12345a", "12 345"} {
		_, err := verifyCodeAt(rfcSecret, code, time.Now())
		if !errors.Is(err, ErrInvalidCodeFormat) {
			t.Errorf("code %q: expected ErrInvalidCodeFormat, got %v", code, err)
		}
	}
}

func TestVerifyCodeAt_CodeWithWhitespace(t *testing.T) {
	now := time.Unix(59, 0)

	code, err := GenerateCode(rfcSecret, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid, err := verifyCodeAt(rfcSecret, "  "+code+"\n", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected code with surrounding whitespace to verify")
	}
}

func TestVerifyCodeAt_InvalidSecret(t *testing.T) {
	_, err := verifyCodeAt("not base32!!", "123456", time.Now())
	if !errors.Is(err, ErrInvalidSecret) {
		t.Fatalf("expected ErrInvalidSecret, got %v", err)
	}
}

func TestGenerateSecret(t *testing.T) {
	engine := NewEngine("auth-service")

	secret, uri, err := engine.GenerateSecret("john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 20 random bytes base32-encode to 32 characters without padding
	if len(secret) != 32 {
		t.Errorf("expected 32-character secret, got %d: %s", len(secret), secret)
	}
	if !validSecretRegex.MatchString(secret) {
		t.Errorf("expected base32 secret, got %s", secret)
	}

	if !strings.HasPrefix(uri, "otpauth://totp/auth-service:john@example.com?") {
		t.Errorf("unexpected provisioning URI: %s", uri)
	}
	for _, want := range []string{"secret=" + secret, "issuer=auth-service", "algorithm=SHA1", "digits=6", "period=30"} {
		if !strings.Contains(uri, want) {
			t.Errorf("provisioning URI missing %q: %s", want, uri)
		}
	}
}

func TestGenerateSecret_Unique(t *testing.T) {
	engine := NewEngine("auth-service")

	first, _, err := engine.GenerateSecret("a@b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := engine.GenerateSecret("a@b.c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first == second {
		t.Error("expected two enrollments to produce distinct secrets")
	}
}

func TestQRCodeDataURI(t *testing.T) {
	engine := NewEngine("auth-service")

	_, uri, err := engine.GenerateSecret("john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dataURI, err := engine.QRCodeDataURI(uri)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(dataURI, "data:image/png;base64,") {
		t.Errorf("expected PNG data URI, got prefix %q", dataURI[:min(len(dataURI), 40)])
	}
}

func TestRoundTrip_GeneratedSecretVerifies(t *testing.T) {
	engine := NewEngine("auth-service")

	secret, _, err := engine.GenerateSecret("john@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	code, err := GenerateCode(secret, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	valid, err := engine.VerifyCode(secret, code)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !valid {
		t.Error("expected freshly generated code to verify against its secret")
	}
}
