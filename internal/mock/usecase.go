package mock

import (
	"context"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MockProjectGetter implements port.ProjectGetter for tests.
type MockProjectGetter struct {
	Out    *port.GetProjectOutput
	Err    error
	Called bool
}

func (m *MockProjectGetter) GetProject(ctx context.Context, id uuid.UUID) (*port.GetProjectOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// MockProjectCreator implements port.ProjectCreator for tests.
type MockProjectCreator struct {
	Out    *model.Project
	Err    error
	Called bool
	In     port.CreateProjectInput
}

func (m *MockProjectCreator) CreateProject(ctx context.Context, in port.CreateProjectInput) (*model.Project, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockProjectUpdater implements port.ProjectUpdater for tests.
type MockProjectUpdater struct {
	Out    *model.Project
	Err    error
	Called bool
	In     port.UpdateProjectInput
}

func (m *MockProjectUpdater) UpdateProject(ctx context.Context, in port.UpdateProjectInput) (*model.Project, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockProjectLister implements port.ProjectLister for tests.
type MockProjectLister struct {
	Out         []model.ProjectView
	Err         error
	Called      bool
	GotCategory string
}

func (m *MockProjectLister) ListProjects(ctx context.Context, category string) ([]model.ProjectView, error) {
	m.Called = true
	m.GotCategory = category
	return m.Out, m.Err
}

// MockProjectDeleter implements port.ProjectDeleter for tests.
type MockProjectDeleter struct {
	Err    error
	Called bool
	ID     uuid.UUID
}

func (m *MockProjectDeleter) DeleteProject(ctx context.Context, id uuid.UUID) error {
	m.Called = true
	m.ID = id
	return m.Err
}

// MockAdminAuthenticator implements port.AdminAuthenticator for tests.
type MockAdminAuthenticator struct {
	Out    port.LoginOutput
	Err    error
	Called bool
	In     port.LoginInput
}

func (m *MockAdminAuthenticator) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	m.Called = true
	m.In = in
	return m.Out, m.Err
}

// MockContactSender implements port.ContactSender for tests.
type MockContactSender struct {
	Err    error
	Called bool
	In     port.ContactInput
}

func (m *MockContactSender) SubmitContact(ctx context.Context, in port.ContactInput) error {
	m.Called = true
	m.In = in
	return m.Err
}

// MockContactDeliverer implements port.ContactDeliverer for tests.
type MockContactDeliverer struct {
	Err    error
	Called bool
	Msg    model.ContactMessage
}

func (m *MockContactDeliverer) DeliverContact(ctx context.Context, msg model.ContactMessage) error {
	m.Called = true
	m.Msg = msg
	return m.Err
}

// MockPinger implements port.Pinger for tests.
type MockPinger struct {
	Err    error
	Called bool
}

func (m *MockPinger) Ping(ctx context.Context) error {
	m.Called = true
	return m.Err
}
