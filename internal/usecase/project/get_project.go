package project

import (
	"context"
	"errors"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type projectGetterSrv struct {
	repo port.ProjectRepository
	ttl  time.Duration
}

// compile-time check: *projectGetterSrv must satisfy port.ProjectGetter
var _ port.ProjectGetter = (*projectGetterSrv)(nil)

// NewProjectGetter returns a getter whose output stays cacheable for ttl.
func NewProjectGetter(repo port.ProjectRepository, ttl time.Duration) port.ProjectGetter {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &projectGetterSrv{repo, ttl}
}

func (s *projectGetterSrv) GetProject(ctx context.Context, id uuid.UUID) (*port.GetProjectOutput, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &port.GetProjectOutput{
		ProjectView: p.View(),
		ValidUntil:  time.Now().Add(s.ttl),
	}, nil
}
