package domain

import (
	"fmt"
	"strings"
)

type TimelineType string

const (
	TimelineMilestone TimelineType = "milestone"
	TimelineTask      TimelineType = "task"
	TimelineReview    TimelineType = "review"
	TimelineAudit     TimelineType = "audit"
)

// TimelineTypes lists the accepted timeline item types in display order.
var TimelineTypes = []TimelineType{
	TimelineMilestone,
	TimelineTask,
	TimelineReview,
	TimelineAudit,
}

// ValidTimelineTypes is the canonical set of accepted timeline type strings.
var ValidTimelineTypes = map[string]bool{
	"milestone": true, "task": true, "review": true, "audit": true,
}

// Label returns the Norwegian label the dashboard uses for the type.
func (t TimelineType) Label() string {
	switch t {
	case TimelineMilestone:
		return "Milepæl"
	case TimelineTask:
		return "Oppgave"
	case TimelineReview:
		return "Gjennomgang"
	case TimelineAudit:
		return "Revisjon"
	default:
		return string(t)
	}
}

// ParseTimelineType normalizes s and checks it against ValidTimelineTypes.
func ParseTimelineType(s string) (TimelineType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if !ValidTimelineTypes[norm] {
		return "", fmt.Errorf("%w: %q (want milestone, task, review or audit)", ErrInvalidTimelineType, s)
	}
	return TimelineType(norm), nil
}

// ActionStatus and TaskStatus are server-defined; the client displays them
// opaquely and never branches on their value.
type ActionStatus string

type TaskStatus string

// Statuses the reference backend assigns to new entities.
const (
	ActionPlanned ActionStatus = "planned"
	TaskTodo      TaskStatus   = "todo"
)
