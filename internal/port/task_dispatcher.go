package port

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
)

// TaskDispatcher enqueues asynchronous tasks.
type TaskDispatcher interface {
	EnqueueContactMessage(ctx context.Context, msg model.ContactMessage) error
}
