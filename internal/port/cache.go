package port

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// Cache provides caching capabilities for project retrieval.
type Cache interface {
	GetProjectDetails(ctx context.Context, id uuid.UUID) ([]byte, error)
	GetEtagProjectDetails(ctx context.Context, id uuid.UUID) (string, error)
	SetProjectDetails(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time)
	SetEtagProjectDetails(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time)
	DeleteProjectDetails(ctx context.Context, id uuid.UUID) error
	DeleteEtagProjectDetails(ctx context.Context, id uuid.UUID) error
}

// RateLimiter counts hits per key over a fixed window.
type RateLimiter interface {
	// Allow records a hit for key. When the limit is exceeded it returns false
	// and the time left until the window resets.
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}
