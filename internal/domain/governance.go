package domain

// Every dependent entity references exactly one owning project. Task,
// Comment and Document additionally reference one owning timeline item.
// The client trusts the server on both relations and never checks them.

// Metric is a scorecard entry tracking a current value against a target.
type Metric struct {
	ID           string  `json:"_id"`
	ProjectID    string  `json:"project_id"`
	Title        string  `json:"title"`
	Description  string  `json:"description,omitempty"`
	CurrentValue float64 `json:"current_value"`
	TargetValue  float64 `json:"target_value"`
	Unit         string  `json:"unit"`
}

// Progress returns CurrentValue/TargetValue clamped to [0, 1].
// A zero or negative target yields 0.
func (m *Metric) Progress() float64 {
	if m.TargetValue <= 0 {
		return 0
	}
	p := m.CurrentValue / m.TargetValue
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// Action is an item in the action plan.
type Action struct {
	ID          string       `json:"_id"`
	ProjectID   string       `json:"project_id"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      ActionStatus `json:"status"`
}

// TimelineItem is a dated entry on the project timeline. Dates are kept as
// the server sent them; only the day part is ever displayed.
type TimelineItem struct {
	ID        string       `json:"_id"`
	ProjectID string       `json:"project_id"`
	Title     string       `json:"title"`
	Type      TimelineType `json:"type"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date,omitempty"`
}

// StartDay returns the YYYY-MM-DD prefix of StartDate.
func (t *TimelineItem) StartDay() string { return dayPrefix(t.StartDate) }

// EndDay returns the YYYY-MM-DD prefix of EndDate, or "" when unset.
func (t *TimelineItem) EndDay() string { return dayPrefix(t.EndDate) }

func dayPrefix(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// Task is a sub-item of work attached to a timeline item.
type Task struct {
	ID             string     `json:"_id"`
	ProjectID      string     `json:"project_id"`
	TimelineItemID string     `json:"timeline_item_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Status         TaskStatus `json:"status"`
}

// Comment is a text annotation on a timeline item.
type Comment struct {
	ID             string `json:"_id"`
	ProjectID      string `json:"project_id"`
	TimelineItemID string `json:"timeline_item_id"`
	Content        string `json:"content"`
}

// Document is a named link attached to a timeline item.
type Document struct {
	ID             string `json:"_id"`
	ProjectID      string `json:"project_id"`
	TimelineItemID string `json:"timeline_item_id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
}
