package project

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/fhuszti/portfolio-ms-go/internal/logger"
	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/validation"
)

type projectCreatorSrv struct {
	repo     port.ProjectRepository
	pipeline *Pipeline
	uuidGen  port.UUIDGen
	randN    func(n int) int
}

// compile-time check: *projectCreatorSrv must satisfy port.ProjectCreator
var _ port.ProjectCreator = (*projectCreatorSrv)(nil)

func NewProjectCreator(repo port.ProjectRepository, pipeline *Pipeline, uuidGen port.UUIDGen) port.ProjectCreator {
	return &projectCreatorSrv{repo, pipeline, uuidGen, rand.IntN}
}

func categoryError() *ValidationError {
	values := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		values[i] = string(c.Value)
	}
	return NewValidationError("Invalid category. Must be one of: %s", strings.Join(values, ", "))
}

// CreateProject uploads the cover first, then the gallery and the media item
// concurrently, and stores the project only when every upload succeeded.
func (s *projectCreatorSrv) CreateProject(ctx context.Context, in port.CreateProjectInput) (*model.Project, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	if err := validation.ValidateStruct(in); err != nil {
		if validation.HasTag(err, "category", "category") {
			return nil, categoryError()
		}
		return nil, NewValidationError("Title and category are required")
	}
	cover, ok := in.Files.Get(model.RoleCover)
	if !ok {
		return nil, NewValidationError("Cover image is required")
	}

	// uploads already started must finish even if the client goes away
	ctx = context.WithoutCancel(ctx)

	logger.Infof(ctx, "starting upload process for project %q", in.Title)
	coverURL, err := s.pipeline.uploadCover(ctx, cover.Files[0])
	if err != nil {
		return nil, err
	}

	images, media, err := s.pipeline.uploadGalleryAndMedia(ctx, in.Files)
	if err != nil {
		return nil, err
	}
	if images == nil {
		images = model.Images{}
	}

	now := s.pipeline.now().UTC()
	p := &model.Project{
		ID:          s.uuidGen(),
		Title:       in.Title,
		Description: in.Description,
		Category:    model.Category(in.Category),
		CoverImage:  coverURL,
		Images:      images,
		Media:       media,
		Likes:       s.randN(500),
		Views:       s.randN(2000),
		Comments:    s.randN(50),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("save project: %w", err)
	}

	logger.Infof(ctx, "✅  project #%s created", p.ID)
	return p, nil
}

