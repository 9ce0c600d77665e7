package service

import (
	"context"

	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
)

// ── ports ────────────────────────────────────────────────────────────────────
// api.Client satisfies every backend port below.

type AuthBackend interface {
	Login(ctx context.Context, req contract.LoginRequest) (*contract.TokenResponse, error)
	Register(ctx context.Context, req contract.RegisterRequest) (*contract.TokenResponse, error)
}

// CredentialStore is the session the auth flow writes to. session.Store
// satisfies it.
type CredentialStore interface {
	Token() (string, bool)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}

type ProjectBackend interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	CreateProject(ctx context.Context, req contract.CreateProjectRequest) (*domain.Project, error)
	ListTimeline(ctx context.Context, projectID string) ([]domain.TimelineItem, error)
}

// ReadBackend is the set of reads the detail loader fans out over.
type ReadBackend interface {
	ListMetrics(ctx context.Context, projectID string) ([]domain.Metric, error)
	ListActions(ctx context.Context, projectID string) ([]domain.Action, error)
	ListTimeline(ctx context.Context, projectID string) ([]domain.TimelineItem, error)
	ListTasks(ctx context.Context, timelineItemID string) ([]domain.Task, error)
	ListComments(ctx context.Context, projectID string) ([]domain.Comment, error)
	ListDocuments(ctx context.Context, projectID string) ([]domain.Document, error)
}

type WriteBackend interface {
	CreateMetric(ctx context.Context, req contract.CreateMetricRequest) (*domain.Metric, error)
	CreateAction(ctx context.Context, req contract.CreateActionRequest) (*domain.Action, error)
	CreateTimelineItem(ctx context.Context, req contract.CreateTimelineItemRequest) (*domain.TimelineItem, error)
	CreateTask(ctx context.Context, req contract.CreateTaskRequest) (*domain.Task, error)
	CreateComment(ctx context.Context, req contract.CreateCommentRequest) (*domain.Comment, error)
	CreateDocument(ctx context.Context, req contract.CreateDocumentRequest) (*domain.Document, error)
}

// ── use cases ────────────────────────────────────────────────────────────────

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	Logout(ctx context.Context) error
	Authenticated() bool
}

type ProjectService interface {
	List(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, name string) (*domain.Project, error)
	// Timeline reads one project's timeline directly. Unlike the detail
	// loader it returns read failures to the caller.
	Timeline(ctx context.Context, projectID string) ([]domain.TimelineItem, error)
}

// EntityService creates project-scoped entities. Every method either returns
// the created entity, a *FieldError raised before any request, or a
// *WriteError describing a rejected or failed request.
type EntityService interface {
	CreateMetric(ctx context.Context, req contract.CreateMetricRequest) (*domain.Metric, error)
	CreateAction(ctx context.Context, req contract.CreateActionRequest) (*domain.Action, error)
	CreateTimelineItem(ctx context.Context, req contract.CreateTimelineItemRequest) (*domain.TimelineItem, error)
	CreateTask(ctx context.Context, req contract.CreateTaskRequest) (*domain.Task, error)
	CreateComment(ctx context.Context, req contract.CreateCommentRequest) (*domain.Comment, error)
	CreateDocument(ctx context.Context, req contract.CreateDocumentRequest) (*domain.Document, error)
}
