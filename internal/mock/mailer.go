package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// MockMailer implements port.Mailer for tests.
type MockMailer struct {
	Err error

	Called bool
	Sent   []port.Email
}

func (m *MockMailer) Send(ctx context.Context, e port.Email) error {
	m.Called = true
	m.Sent = append(m.Sent, e)
	return m.Err
}
