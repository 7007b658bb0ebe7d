package mock

import (
	"context"
	"sync"

	"github.com/fhuszti/portfolio-ms-go/internal/model"
	"github.com/fhuszti/portfolio-ms-go/internal/port"
	"github.com/fhuszti/portfolio-ms-go/internal/uuid"
)

// MockProjectRepo implements port.ProjectRepository for tests. When
// ProjectRecord is nil, records are kept in an in-memory map.
type MockProjectRepo struct {
	mu sync.Mutex

	ProjectRecord *model.Project
	ListOut       []*model.Project
	Records       map[uuid.UUID]*model.Project

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error

	GetCalled      bool
	Created        *model.Project
	Updated        *model.Project
	CreateCalls    int
	DeleteCalled   bool
	DeletedID      uuid.UUID
	ListCalled     bool
	ListedCategory model.Category
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalled = true
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.ProjectRecord != nil {
		cp := *m.ProjectRecord
		return &cp, nil
	}
	if p, ok := m.Records[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, port.ErrNotFound
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	m.Created = p
	if m.CreateErr != nil {
		return m.CreateErr
	}
	if m.Records == nil {
		m.Records = make(map[uuid.UUID]*model.Project)
	}
	m.Records[p.ID] = p
	return nil
}

func (m *MockProjectRepo) Update(ctx context.Context, p *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updated = p
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	if m.Records != nil {
		m.Records[p.ID] = p
	}
	return nil
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalled = true
	m.DeletedID = id
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if m.ProjectRecord != nil {
		return nil
	}
	if _, ok := m.Records[id]; !ok {
		return port.ErrNotFound
	}
	delete(m.Records, id)
	return nil
}

func (m *MockProjectRepo) List(ctx context.Context, category model.Category) ([]*model.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalled = true
	m.ListedCategory = category
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}
