package mock

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	ProjectOut []byte

	// etag values
	EtagProject string

	// errors
	GetProjectErr     error
	GetEtagProjectErr error
	DelProjectErr     error
	DelEtagProjectErr error

	// call flags
	GetProjectCalled     bool
	GetEtagProjectCalled bool
	SetProjectCalled     bool
	SetEtagProjectCalled bool
	DelProjectCalled     bool
	DelEtagProjectCalled bool

	ValidUntil time.Time
}

func (c *Cache) GetProjectDetails(ctx context.Context, id uuid.UUID) ([]byte, error) {
	c.GetProjectCalled = true
	if c.GetProjectErr != nil {
		return nil, c.GetProjectErr
	}
	return c.ProjectOut, nil
}

func (c *Cache) GetEtagProjectDetails(ctx context.Context, id uuid.UUID) (string, error) {
	c.GetEtagProjectCalled = true
	if c.GetEtagProjectErr != nil {
		return "", c.GetEtagProjectErr
	}
	return c.EtagProject, nil
}

func (c *Cache) SetProjectDetails(ctx context.Context, id uuid.UUID, data []byte, validUntil time.Time) {
	c.SetProjectCalled = true
	c.ProjectOut = data
	c.ValidUntil = validUntil
}

func (c *Cache) SetEtagProjectDetails(ctx context.Context, id uuid.UUID, etag string, validUntil time.Time) {
	c.SetEtagProjectCalled = true
	c.EtagProject = etag
}

func (c *Cache) DeleteProjectDetails(ctx context.Context, id uuid.UUID) error {
	c.DelProjectCalled = true
	return c.DelProjectErr
}

func (c *Cache) DeleteEtagProjectDetails(ctx context.Context, id uuid.UUID) error {
	c.DelEtagProjectCalled = true
	return c.DelEtagProjectErr
}

// RateLimiter implements port.RateLimiter for tests.
type RateLimiter struct {
	Deny       bool
	RetryAfter time.Duration
	Err        error

	Keys []string
}

func (r *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	r.Keys = append(r.Keys, key)
	if r.Err != nil {
		return false, 0, r.Err
	}
	if r.Deny {
		return false, r.RetryAfter, nil
	}
	return true, 0, nil
}
