package testutil

import (
	"time"

	"github.com/alexanderramin/styring/internal/domain"
	"github.com/google/uuid"
)

func NewTestProject(name string) domain.Project {
	return domain.Project{ID: uuid.New().String(), Name: name}
}

// Metric options
type MetricOption func(*domain.Metric)

func WithValues(current, target float64) MetricOption {
	return func(m *domain.Metric) {
		m.CurrentValue = current
		m.TargetValue = target
	}
}

func WithUnit(unit string) MetricOption {
	return func(m *domain.Metric) {
		m.Unit = unit
	}
}

func NewTestMetric(projectID, title string, opts ...MetricOption) domain.Metric {
	m := domain.Metric{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		Title:       title,
		TargetValue: 100,
		Unit:        "%",
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func NewTestAction(projectID, title string, status domain.ActionStatus) domain.Action {
	return domain.Action{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Status:    status,
	}
}

// TimelineItem options
type TimelineOption func(*domain.TimelineItem)

func WithType(t domain.TimelineType) TimelineOption {
	return func(i *domain.TimelineItem) {
		i.Type = t
	}
}

func WithDates(start time.Time, end *time.Time) TimelineOption {
	return func(i *domain.TimelineItem) {
		i.StartDate = start.UTC().Format(time.RFC3339)
		i.EndDate = ""
		if end != nil {
			i.EndDate = end.UTC().Format(time.RFC3339)
		}
	}
}

func NewTestTimelineItem(projectID, title string, opts ...TimelineOption) domain.TimelineItem {
	i := domain.TimelineItem{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Title:     title,
		Type:      domain.TimelineMilestone,
		StartDate: time.Now().UTC().Format(time.RFC3339),
	}
	for _, opt := range opts {
		opt(&i)
	}
	return i
}

func NewTestTask(item domain.TimelineItem, title string) domain.Task {
	return domain.Task{
		ID:             uuid.New().String(),
		ProjectID:      item.ProjectID,
		TimelineItemID: item.ID,
		Title:          title,
		Status:         domain.TaskTodo,
	}
}

func NewTestComment(item domain.TimelineItem, content string) domain.Comment {
	return domain.Comment{
		ID:             uuid.New().String(),
		ProjectID:      item.ProjectID,
		TimelineItemID: item.ID,
		Content:        content,
	}
}

func NewTestDocument(item domain.TimelineItem, name, url string) domain.Document {
	return domain.Document{
		ID:             uuid.New().String(),
		ProjectID:      item.ProjectID,
		TimelineItemID: item.ID,
		Name:           name,
		URL:            url,
	}
}
