package project

import (
	"context"
	"errors"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type projectDeleterSrv struct {
	repo  port.ProjectRepository
	cache port.Cache
}

// compile-time check: *projectDeleterSrv must satisfy port.ProjectDeleter
var _ port.ProjectDeleter = (*projectDeleterSrv)(nil)

func NewProjectDeleter(repo port.ProjectRepository, cache port.Cache) port.ProjectDeleter {
	return &projectDeleterSrv{repo, cache}
}

// DeleteProject removes the record and clears its cache entries. The uploaded
// files stay on the media host.
func (s *projectDeleterSrv) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return ErrProjectNotFound
		}
		return err
	}

	invalidate(ctx, s.cache, &model.Project{ID: id})
	logger.Infof(ctx, "✅  project #%s deleted", id)
	return nil
}
