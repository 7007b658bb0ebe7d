package port

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// HTTPRenderer mediates between HTTP handlers and the project getter use case.
// It provides caching capabilities and returns both the JSON representation of
// the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	// RenderGetProject returns the cached JSON result and its ETag if available or
	// executes the underlying use case and caches the output otherwise.
	RenderGetProject(ctx context.Context, getter ProjectGetter, id uuid.UUID) ([]byte, string, error)
}
