package port

import (
	"context"
	"time"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

type UUIDGen func() uuid.UUID

// ProjectCreator validates a submitted form, uploads its files and stores the project.
type ProjectCreator interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (*model.Project, error)
}
type CreateProjectInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Category    string `json:"category" validate:"required,category"`
	Files       model.FileGroups
}

// ProjectUpdater applies a partial update to an existing project.
type ProjectUpdater interface {
	UpdateProject(ctx context.Context, in UpdateProjectInput) (*model.Project, error)
}

// UpdateProjectInput carries only the fields that were submitted. A nil text
// field or a missing file group leaves the stored value untouched.
type UpdateProjectInput struct {
	ID          uuid.UUID
	Title       *string
	Description *string
	Category    *string
	Files       model.FileGroups
}

// ProjectGetter retrieves a single project.
type ProjectGetter interface {
	GetProject(ctx context.Context, id uuid.UUID) (*GetProjectOutput, error)
}
type GetProjectOutput struct {
	model.ProjectView
	ValidUntil time.Time `json:"-"`
}

// ProjectLister lists projects, optionally filtered by category.
type ProjectLister interface {
	ListProjects(ctx context.Context, category string) ([]model.ProjectView, error)
}

// ProjectDeleter removes a project record. Remote assets are left on the media host.
type ProjectDeleter interface {
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// AdminAuthenticator checks admin credentials and issues a session token.
type AdminAuthenticator interface {
	Login(ctx context.Context, in LoginInput) (LoginOutput, error)
}
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ContactSender accepts a contact form submission for delivery.
type ContactSender interface {
	SubmitContact(ctx context.Context, in ContactInput) error
}
type ContactInput struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"omitempty,max=300"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ContactDeliverer sends an accepted contact message to the site owner.
type ContactDeliverer interface {
	DeliverContact(ctx context.Context, msg model.ContactMessage) error
}
