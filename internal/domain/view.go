package domain

// ProjectView is the assembled read state for one project. It is always
// replaced whole after a reload; nothing is merged into an existing view.
type ProjectView struct {
	ProjectID string
	Metrics   []Metric
	Actions   []Action
	Timeline  []TimelineItem
	Comments  []Comment
	Documents []Document

	// Tasks maps every timeline item id in Timeline to its tasks. The key
	// set equals the set of timeline ids exactly.
	Tasks map[string][]Task

	// FailedReads counts reads that came back empty because they failed.
	// It is informational only; failed reads look like empty collections.
	FailedReads int
}

// NewProjectView returns a view with every collection empty but non-nil.
func NewProjectView(projectID string) *ProjectView {
	return &ProjectView{
		ProjectID: projectID,
		Metrics:   []Metric{},
		Actions:   []Action{},
		Timeline:  []TimelineItem{},
		Comments:  []Comment{},
		Documents: []Document{},
		Tasks:     map[string][]Task{},
	}
}

// TasksFor returns the tasks loaded for a timeline item.
func (v *ProjectView) TasksFor(timelineItemID string) []Task {
	return v.Tasks[timelineItemID]
}

// CommentsFor derives the comments belonging to one timeline item from the
// project-wide comment list, preserving order.
func CommentsFor(comments []Comment, timelineItemID string) []Comment {
	out := make([]Comment, 0)
	for _, c := range comments {
		if c.TimelineItemID == timelineItemID {
			out = append(out, c)
		}
	}
	return out
}

// DocumentsFor derives the documents belonging to one timeline item from the
// project-wide document list, preserving order.
func DocumentsFor(documents []Document, timelineItemID string) []Document {
	out := make([]Document, 0)
	for _, d := range documents {
		if d.TimelineItemID == timelineItemID {
			out = append(out, d)
		}
	}
	return out
}
