package project

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
)

type projectListerSrv struct {
	repo port.ProjectRepository
}

// compile-time check: *projectListerSrv must satisfy port.ProjectLister
var _ port.ProjectLister = (*projectListerSrv)(nil)

func NewProjectLister(repo port.ProjectRepository) port.ProjectLister {
	return &projectListerSrv{repo}
}

// ListProjects returns every project, newest first. A non-empty category must
// be one of model.Categories.
func (s *projectListerSrv) ListProjects(ctx context.Context, category string) ([]model.ProjectView, error) {
	if category != "" && !model.IsCategory(category) {
		return nil, categoryError()
	}
	projects, err := s.repo.List(ctx, model.Category(category))
	if err != nil {
		return nil, err
	}
	out := make([]model.ProjectView, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.View())
	}
	return out, nil
}
