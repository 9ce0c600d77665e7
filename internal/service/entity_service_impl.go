package service

import (
	"context"

	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
)

type entityService struct {
	backend  WriteBackend
	observer UseCaseObserver
}

func NewEntityService(backend WriteBackend, observers ...UseCaseObserver) EntityService {
	return &entityService{backend: backend, observer: useCaseObserverOrNoop(observers)}
}

type validator interface {
	Validate() error
}

// create runs the shared command path: validate, send once, wrap failures.
func create[T any](ctx context.Context, obs UseCaseObserver, entity, projectID string, req validator, send func() (*T, error)) (out *T, err error) {
	done := track(ctx, obs, "create-entity", map[string]any{"entity": entity, "project_id": projectID})
	defer func() { done(err) }()

	if err = req.Validate(); err != nil {
		return nil, err
	}
	out, err = send()
	if err != nil {
		return nil, newWriteError(entity, err)
	}
	return out, nil
}

func (s *entityService) CreateMetric(ctx context.Context, req contract.CreateMetricRequest) (*domain.Metric, error) {
	return create(ctx, s.observer, "metric", req.ProjectID, req, func() (*domain.Metric, error) {
		return s.backend.CreateMetric(ctx, req)
	})
}

func (s *entityService) CreateAction(ctx context.Context, req contract.CreateActionRequest) (*domain.Action, error) {
	return create(ctx, s.observer, "action", req.ProjectID, req, func() (*domain.Action, error) {
		return s.backend.CreateAction(ctx, req)
	})
}

func (s *entityService) CreateTimelineItem(ctx context.Context, req contract.CreateTimelineItemRequest) (*domain.TimelineItem, error) {
	if t, err := domain.ParseTimelineType(string(req.Type)); err == nil {
		req.Type = t
	}
	return create(ctx, s.observer, "timeline item", req.ProjectID, req, func() (*domain.TimelineItem, error) {
		return s.backend.CreateTimelineItem(ctx, req)
	})
}

func (s *entityService) CreateTask(ctx context.Context, req contract.CreateTaskRequest) (*domain.Task, error) {
	return create(ctx, s.observer, "task", req.ProjectID, req, func() (*domain.Task, error) {
		return s.backend.CreateTask(ctx, req)
	})
}

func (s *entityService) CreateComment(ctx context.Context, req contract.CreateCommentRequest) (*domain.Comment, error) {
	return create(ctx, s.observer, "comment", req.ProjectID, req, func() (*domain.Comment, error) {
		return s.backend.CreateComment(ctx, req)
	})
}

func (s *entityService) CreateDocument(ctx context.Context, req contract.CreateDocumentRequest) (*domain.Document, error) {
	return create(ctx, s.observer, "document", req.ProjectID, req, func() (*domain.Document, error) {
		return s.backend.CreateDocument(ctx, req)
	})
}
