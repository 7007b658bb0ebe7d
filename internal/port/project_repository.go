package port

import (
	"context"
	"errors"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// ErrNotFound is returned by repositories when no project matches the given ID.
var ErrNotFound = errors.New("project not found")

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *model.Project) error
	// List returns projects sorted by creation date, newest first. An empty
	// category returns every project.
	List(ctx context.Context, category model.Category) ([]*model.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
