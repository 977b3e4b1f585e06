package security

import (
	"SocialPulse/internal/api/config"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims *UserClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func validClaims(sub string) *UserClaims {
	return &UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestValidateToken(t *testing.T) {
	v := NewVerifier(config.AuthConfig{JWTSecret: testSecret, Audience: "authenticated"})
	sub := "2b8d6f0e-8a43-4c1a-9c55-0d3b1f6e7a21"

	claims, err := v.ValidateToken(sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(sub)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != sub {
		t.Fatalf("subject = %q, want %q", claims.Subject, sub)
	}
}

func TestValidateTokenRejects(t *testing.T) {
	v := NewVerifier(config.AuthConfig{JWTSecret: testSecret, Audience: "authenticated"})
	sub := "2b8d6f0e-8a43-4c1a-9c55-0d3b1f6e7a21"

	expired := validClaims(sub)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongAud := validClaims(sub)
	wrongAud.Audience = jwt.ClaimStrings{"anon"}

	noExp := validClaims(sub)
	noExp.ExpiresAt = nil

	cases := map[string]string{
		"empty":        "",
		"garbage":      "a.b.c",
		"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims(sub)),
		"wrong alg":    sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(sub)),
		"expired":      sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
		"audience":     sign(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAud),
		"no exp":       sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExp),
		"bad subject":  sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("admin")),
	}

	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := v.ValidateToken(token); err == nil {
				t.Fatal("expected token to be rejected")
			}
		})
	}
}

func TestValidateTokenMissing(t *testing.T) {
	v := NewVerifier(config.AuthConfig{JWTSecret: testSecret})
	if _, err := v.ValidateToken(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestBearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc.def.ghi": "abc.def.ghi",
		"bearer abc":         "abc",
		"Basic abc":          "",
		"Bearer ":            "",
		"":                   "",
	}
	for header, want := range cases {
		if got := BearerToken(header); got != want {
			t.Errorf("BearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}
