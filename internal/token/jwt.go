package token

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

const (
	DefaultTTL = 24 * time.Hour
	issuer     = "portfolio-ms"
)

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWT issues and verifies HS256 tokens carrying a subject and a role.
type JWT struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// compile-time check: *JWT must satisfy port.TokenIssuer
var _ port.TokenIssuer = (*JWT)(nil)

func NewJWT(secret string, ttl time.Duration) (*JWT, error) {
	log.Println("initialising token issuer...")
	if secret == "" {
		return nil, errors.New("JWT secret is empty")
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	j := &JWT{secret: []byte(secret), ttl: ttl, now: time.Now}
	j.parser = jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	return j, nil
}

func (j *JWT) Issue(subject, role string) (string, time.Time, error) {
	now := j.now()
	exp := now.Add(j.ttl)
	c := claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp.Truncate(time.Second), nil
}

func (j *JWT) Verify(raw string) (port.TokenClaims, error) {
	var c claims
	tok, err := j.parser.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil {
		var vErr *jwt.ValidationError
		if errors.As(err, &vErr) && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return port.TokenClaims{}, port.ErrTokenExpired
		}
		return port.TokenClaims{}, fmt.Errorf("%w: %v", port.ErrTokenInvalid, err)
	}
	if !tok.Valid || c.Subject == "" || c.Issuer != issuer || c.ExpiresAt == nil {
		return port.TokenClaims{}, port.ErrTokenInvalid
	}
	return port.TokenClaims{Subject: c.Subject, Role: c.Role, ExpiresAt: c.ExpiresAt.Time}, nil
}
