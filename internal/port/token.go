package port

import (
	"errors"
	"time"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies bearer tokens.
type TokenIssuer interface {
	Issue(subject, role string) (token string, expiresAt time.Time, err error)
	// Verify returns ErrTokenExpired or ErrTokenInvalid when the token cannot be trusted.
	Verify(token string) (TokenClaims, error)
}

// TokenVerifier is the read side of TokenIssuer.
type TokenVerifier interface {
	Verify(token string) (TokenClaims, error)
}
