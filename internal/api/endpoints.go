package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
)

// ── auth ─────────────────────────────────────────────────────────────────────

// Login exchanges email and password for an access token.
func (c *Client) Login(ctx context.Context, req contract.LoginRequest) (*contract.TokenResponse, error) {
	var resp contract.TokenResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its access token.
func (c *Client) Register(ctx context.Context, req contract.RegisterRequest) (*contract.TokenResponse, error) {
	var resp contract.TokenResponse
	if err := c.Do(ctx, http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ── projects ─────────────────────────────────────────────────────────────────

func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var out []domain.Project
	err := c.Do(ctx, http.MethodGet, "/projects", nil, &out)
	return out, err
}

func (c *Client) CreateProject(ctx context.Context, req contract.CreateProjectRequest) (*domain.Project, error) {
	var out domain.Project
	if err := c.Do(ctx, http.MethodPost, "/projects", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── project-scoped collections ───────────────────────────────────────────────

func (c *Client) ListMetrics(ctx context.Context, projectID string) ([]domain.Metric, error) {
	var out []domain.Metric
	err := c.Do(ctx, http.MethodGet, scoped("/metrics", projectID), nil, &out)
	return out, err
}

func (c *Client) CreateMetric(ctx context.Context, req contract.CreateMetricRequest) (*domain.Metric, error) {
	var out domain.Metric
	if err := c.Do(ctx, http.MethodPost, "/metrics", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListActions(ctx context.Context, projectID string) ([]domain.Action, error) {
	var out []domain.Action
	err := c.Do(ctx, http.MethodGet, scoped("/actions", projectID), nil, &out)
	return out, err
}

func (c *Client) CreateAction(ctx context.Context, req contract.CreateActionRequest) (*domain.Action, error) {
	var out domain.Action
	if err := c.Do(ctx, http.MethodPost, "/actions", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListTimeline(ctx context.Context, projectID string) ([]domain.TimelineItem, error) {
	var out []domain.TimelineItem
	err := c.Do(ctx, http.MethodGet, scoped("/timeline", projectID), nil, &out)
	return out, err
}

func (c *Client) CreateTimelineItem(ctx context.Context, req contract.CreateTimelineItemRequest) (*domain.TimelineItem, error) {
	var out domain.TimelineItem
	if err := c.Do(ctx, http.MethodPost, "/timeline", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTasks is scoped by timeline item, not by project.
func (c *Client) ListTasks(ctx context.Context, timelineItemID string) ([]domain.Task, error) {
	var out []domain.Task
	err := c.Do(ctx, http.MethodGet, scoped("/tasks", timelineItemID), nil, &out)
	return out, err
}

func (c *Client) CreateTask(ctx context.Context, req contract.CreateTaskRequest) (*domain.Task, error) {
	var out domain.Task
	if err := c.Do(ctx, http.MethodPost, "/tasks", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListComments(ctx context.Context, projectID string) ([]domain.Comment, error) {
	var out []domain.Comment
	err := c.Do(ctx, http.MethodGet, scoped("/comments", projectID), nil, &out)
	return out, err
}

func (c *Client) CreateComment(ctx context.Context, req contract.CreateCommentRequest) (*domain.Comment, error) {
	var out domain.Comment
	if err := c.Do(ctx, http.MethodPost, "/comments", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListDocuments(ctx context.Context, projectID string) ([]domain.Document, error) {
	var out []domain.Document
	err := c.Do(ctx, http.MethodGet, scoped("/documents", projectID), nil, &out)
	return out, err
}

func (c *Client) CreateDocument(ctx context.Context, req contract.CreateDocumentRequest) (*domain.Document, error) {
	var out domain.Document
	if err := c.Do(ctx, http.MethodPost, "/documents", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func scoped(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}
