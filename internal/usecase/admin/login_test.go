package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/fhuszti/portfolio-ms-go/internal/mock"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

func hash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestLogin(t *testing.T) {
	h := hash(t, "hunter22")
	exp := time.Now().Add(time.Hour)

	tests := []struct {
		name      string
		in        port.LoginInput
		issueErr  error
		wantErr   error
		wantToken string
	}{
		{"success", port.LoginInput{Email: "Admin@Example.com ", Password: "hunter22"}, nil, nil, "tok"},
		{"wrong password", port.LoginInput{Email: "admin@example.com", Password: "nope"}, nil, ErrInvalidCredentials, ""},
		{"wrong email", port.LoginInput{Email: "other@example.com", Password: "hunter22"}, nil, ErrInvalidCredentials, ""},
		{"issuer failure", port.LoginInput{Email: "admin@example.com", Password: "hunter22"}, errors.New("sign"), nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &mock.MockTokenIssuer{TokenOut: "tok", ExpiresAt: exp, IssueErr: tt.issueErr}
			svc := NewAuthenticator("admin@example.com", h, tokens)

			out, err := svc.Login(context.Background(), tt.in)
			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if tokens.IssuedSubject != "" {
					t.Error("no token must be issued on failed login")
				}
			case tt.issueErr != nil:
				if !errors.Is(err, tt.issueErr) {
					t.Fatalf("expected %v, got %v", tt.issueErr, err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if out.Token != tt.wantToken || !out.ExpiresAt.Equal(exp) {
					t.Errorf("unexpected output %+v", out)
				}
				if tokens.IssuedSubject != "admin@example.com" || tokens.IssuedRole != RoleAdmin {
					t.Errorf("issued for %q/%q", tokens.IssuedSubject, tokens.IssuedRole)
				}
			}
		})
	}
}
