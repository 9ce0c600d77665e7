package contract

import "github.com/alexanderramin/styring/internal/domain"

// Metric form defaults.
const (
	DefaultMetricTarget  = 100.0
	DefaultMetricCurrent = 0.0
	DefaultMetricUnit    = "%"
)

// CreateMetricRequest is the body of POST /metrics.
type CreateMetricRequest struct {
	ProjectID    string  `json:"project_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	TargetValue  float64 `json:"target_value"`
	CurrentValue float64 `json:"current_value"`
	Unit         string  `json:"unit"`
}

// NewCreateMetricRequest returns a request pre-filled with the form defaults.
func NewCreateMetricRequest(projectID string) CreateMetricRequest {
	return CreateMetricRequest{
		ProjectID:    projectID,
		TargetValue:  DefaultMetricTarget,
		CurrentValue: DefaultMetricCurrent,
		Unit:         DefaultMetricUnit,
	}
}

func (r CreateMetricRequest) Validate() error {
	return domain.RequireFields(
		domain.Field{Name: "project_id", Value: r.ProjectID},
		domain.Field{Name: "title", Value: r.Title},
	)
}

// CreateActionRequest is the body of POST /actions.
type CreateActionRequest struct {
	ProjectID   string `json:"project_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r CreateActionRequest) Validate() error {
	return domain.RequireFields(
		domain.Field{Name: "project_id", Value: r.ProjectID},
		domain.Field{Name: "title", Value: r.Title},
	)
}

// CreateTimelineItemRequest is the body of POST /timeline.
type CreateTimelineItemRequest struct {
	ProjectID string              `json:"project_id"`
	Title     string              `json:"title"`
	Type      domain.TimelineType `json:"type"`
}

// NewCreateTimelineItemRequest defaults the type to milestone.
func NewCreateTimelineItemRequest(projectID string) CreateTimelineItemRequest {
	return CreateTimelineItemRequest{ProjectID: projectID, Type: domain.TimelineMilestone}
}

func (r CreateTimelineItemRequest) Validate() error {
	if err := domain.RequireFields(
		domain.Field{Name: "project_id", Value: r.ProjectID},
		domain.Field{Name: "title", Value: r.Title},
	); err != nil {
		return err
	}
	if _, err := domain.ParseTimelineType(string(r.Type)); err != nil {
		return &domain.FieldError{Field: "type", Err: err}
	}
	return nil
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	ProjectID      string `json:"project_id"`
	TimelineItemID string `json:"timeline_item_id"`
	Title          string `json:"title"`
}

func (r CreateTaskRequest) Validate() error {
	return domain.RequireFields(
		domain.Field{Name: "project_id", Value: r.ProjectID},
		domain.Field{Name: "timeline_item_id", Value: r.TimelineItemID},
		domain.Field{Name: "title", Value: r.Title},
	)
}

// CreateCommentRequest is the body of POST /comments.
type CreateCommentRequest struct {
	ProjectID      string `json:"project_id"`
	TimelineItemID string `json:"timeline_item_id"`
	Content        string `json:"content"`
}

func (r CreateCommentRequest) Validate() error {
	return domain.RequireFields(
		domain.Field{Name: "project_id", Value: r.ProjectID},
		domain.Field{Name: "timeline_item_id", Value: r.TimelineItemID},
		domain.Field{Name: "content", Value: r.Content},
	)
}

// CreateDocumentRequest is the body of POST /documents. Both name and URL
// are required.
type CreateDocumentRequest struct {
	ProjectID      string `json:"project_id"`
	TimelineItemID string `json:"timeline_item_id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
}

func (r CreateDocumentRequest) Validate() error {
	return domain.RequireFields(
		domain.Field{Name: "project_id", Value: r.ProjectID},
		domain.Field{Name: "timeline_item_id", Value: r.TimelineItemID},
		domain.Field{Name: "name", Value: r.Name},
		domain.Field{Name: "url", Value: r.URL},
	)
}
