package admin

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

const RoleAdmin = "admin"

var ErrInvalidCredentials = errors.New("Invalid credentials")

type authenticatorSrv struct {
	email        string
	passwordHash []byte
	tokens       port.TokenIssuer
}

var _ port.AdminAuthenticator = (*authenticatorSrv)(nil)

// NewAuthenticator checks logins against a single admin account whose
// password is stored as a bcrypt hash.
func NewAuthenticator(email, passwordHash string, tokens port.TokenIssuer) port.AdminAuthenticator {
	return &authenticatorSrv{
		email:        strings.ToLower(strings.TrimSpace(email)),
		passwordHash: []byte(passwordHash),
		tokens:       tokens,
	}
}

func (s *authenticatorSrv) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(s.email)) == 1

	// the hash is always compared so both failure paths take the same time
	pwErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(in.Password))
	if !emailOK || pwErr != nil {
		logger.Warnf(ctx, "❌  Failed admin login for %q", email)
		return port.LoginOutput{}, ErrInvalidCredentials
	}

	tok, exp, err := s.tokens.Issue(s.email, RoleAdmin)
	if err != nil {
		return port.LoginOutput{}, fmt.Errorf("issue token: %w", err)
	}
	logger.Infof(ctx, "✅  Admin %q logged in", email)
	return port.LoginOutput{Token: tok, ExpiresAt: exp}, nil
}
