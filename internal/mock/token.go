package mock

import (
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// MockTokenIssuer implements port.TokenIssuer for tests.
type MockTokenIssuer struct {
	TokenOut  string
	ExpiresAt time.Time
	IssueErr  error

	ClaimsOut port.TokenClaims
	VerifyErr error

	IssuedSubject string
	IssuedRole    string
	VerifiedToken string
}

func (m *MockTokenIssuer) Issue(subject, role string) (string, time.Time, error) {
	m.IssuedSubject = subject
	m.IssuedRole = role
	if m.IssueErr != nil {
		return "", time.Time{}, m.IssueErr
	}
	return m.TokenOut, m.ExpiresAt, nil
}

func (m *MockTokenIssuer) Verify(token string) (port.TokenClaims, error) {
	m.VerifiedToken = token
	if m.VerifyErr != nil {
		return port.TokenClaims{}, m.VerifyErr
	}
	return m.ClaimsOut, nil
}
