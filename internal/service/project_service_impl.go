package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
)

type projectService struct {
	backend  ProjectBackend
	observer UseCaseObserver
}

func NewProjectService(backend ProjectBackend, observers ...UseCaseObserver) ProjectService {
	return &projectService{backend: backend, observer: useCaseObserverOrNoop(observers)}
}

// List returns the caller's projects in server order. A null body yields an
// empty list.
func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.backend.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

func (s *projectService) Timeline(ctx context.Context, projectID string) ([]domain.TimelineItem, error) {
	items, err := s.backend.ListTimeline(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing timeline: %w", err)
	}
	if items == nil {
		items = []domain.TimelineItem{}
	}
	return items, nil
}

func (s *projectService) Create(ctx context.Context, name string) (p *domain.Project, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "create-project", fields)
	defer func() { done(err) }()

	req := contract.CreateProjectRequest{Name: name}
	if err = req.Validate(); err != nil {
		return nil, err
	}
	p, err = s.backend.CreateProject(ctx, req)
	if err != nil {
		return nil, newWriteError("project", err)
	}
	fields["project_id"] = p.ID
	return p, nil
}
