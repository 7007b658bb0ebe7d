package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

func newTestJWT(t *testing.T) *JWT {
	t.Helper()
	j, err := NewJWT("s3cret", time.Hour)
	if err != nil {
		t.Fatalf("NewJWT: %v", err)
	}
	return j
}

func TestIssueVerify(t *testing.T) {
	j := newTestJWT(t)
	tok, exp, err := j.Issue("admin@example.com", "admin")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if d := time.Until(exp); d < 59*time.Minute || d > time.Hour {
		t.Errorf("expiry in %v, want ~1h", d)
	}

	c, err := j.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if c.Subject != "admin@example.com" || c.Role != "admin" || !c.ExpiresAt.Equal(exp) {
		t.Errorf("unexpected claims %+v", c)
	}
}

func TestVerify_Rejections(t *testing.T) {
	j := newTestJWT(t)

	expired := newTestJWT(t)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredTok, _, _ := expired.Issue("a", "admin")

	other, _ := NewJWT("other-secret", time.Hour)
	foreignTok, _, _ := other.Issue("a", "admin")

	noneTok, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "a", "iss": issuer}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)

	noSubTok, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"iss": issuer, "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("s3cret"))

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"expired", expiredTok, port.ErrTokenExpired},
		{"wrong secret", foreignTok, port.ErrTokenInvalid},
		{"alg none", noneTok, port.ErrTokenInvalid},
		{"garbage", "not.a.jwt", port.ErrTokenInvalid},
		{"no subject", noSubTok, port.ErrTokenInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := j.Verify(tt.token); !errors.Is(err, tt.want) {
				t.Errorf("Verify = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNewJWT_EmptySecret(t *testing.T) {
	if _, err := NewJWT("", 0); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
