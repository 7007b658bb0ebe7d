package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type projectUpdaterSrv struct {
	repo     port.ProjectRepository
	pipeline *Pipeline
	cache    port.Cache
}

// compile-time check: *projectUpdaterSrv must satisfy port.ProjectUpdater
var _ port.ProjectUpdater = (*projectUpdaterSrv)(nil)

func NewProjectUpdater(repo port.ProjectRepository, pipeline *Pipeline, cache port.Cache) port.ProjectUpdater {
	return &projectUpdaterSrv{repo, pipeline, cache}
}

// UpdateProject changes only what was submitted. Empty title or category
// values are ignored, a submitted file group replaces the stored value as a whole.
func (s *projectUpdaterSrv) UpdateProject(ctx context.Context, in port.UpdateProjectInput) (*model.Project, error) {
	p, err := s.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}

	if in.Title != nil {
		if t := strings.TrimSpace(*in.Title); t != "" {
			p.Title = t
		}
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Category != nil {
		if c := strings.TrimSpace(*in.Category); c != "" {
			if !model.IsCategory(c) {
				return nil, categoryError()
			}
			p.Category = model.Category(c)
		}
	}

	ctx = context.WithoutCancel(ctx)

	if cover, ok := in.Files.Get(model.RoleCover); ok {
		url, err := s.pipeline.uploadCover(ctx, cover.Files[0])
		if err != nil {
			return nil, err
		}
		p.CoverImage = url
	}

	images, media, err := s.pipeline.uploadGalleryAndMedia(ctx, in.Files)
	if err != nil {
		return nil, err
	}
	if images != nil {
		p.Images = images
	}
	if media != nil {
		p.Media = media
	}

	p.UpdatedAt = s.pipeline.now().UTC()
	if err := s.repo.Update(ctx, p); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("save project: %w", err)
	}

	invalidate(ctx, s.cache, p)
	logger.Infof(ctx, "✅  project #%s updated", p.ID)
	return p, nil
}

func invalidate(ctx context.Context, cache port.Cache, p *model.Project) {
	if err := cache.DeleteProjectDetails(ctx, p.ID); err != nil {
		logger.Warnf(ctx, "failed deleting cache for project #%s: %v", p.ID, err)
	}
	if err := cache.DeleteEtagProjectDetails(ctx, p.ID); err != nil {
		logger.Warnf(ctx, "failed deleting etag cache for project #%s: %v", p.ID, err)
	}
}
