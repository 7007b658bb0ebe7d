package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	ContactCalled bool
	ContactMsgs   []model.ContactMessage
	ContactErr    error
}

func (m *MockDispatcher) EnqueueContactMessage(ctx context.Context, msg model.ContactMessage) error {
	m.ContactCalled = true
	m.ContactMsgs = append(m.ContactMsgs, msg)
	return m.ContactErr
}
