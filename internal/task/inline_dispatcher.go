package task

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

// InlineDispatcher runs tasks in the calling goroutine. Used when no redis is
// configured for a background worker.
type InlineDispatcher struct {
	deliverer port.ContactDeliverer
}

var _ port.TaskDispatcher = (*InlineDispatcher)(nil)

func NewInlineDispatcher(deliverer port.ContactDeliverer) *InlineDispatcher {
	return &InlineDispatcher{deliverer: deliverer}
}

func (d *InlineDispatcher) EnqueueContactMessage(ctx context.Context, msg model.ContactMessage) error {
	return d.deliverer.DeliverContact(ctx, msg)
}
