package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/styring/internal/domain"
)

// resolveProjectID resolves a --project value to a full project ID. The
// value can be a full ID or an unambiguous ID prefix.
func resolveProjectID(ctx context.Context, app *App, input string) (string, error) {
	p, err := resolveProject(ctx, app, input)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// resolveProject resolves input and returns the full project record.
func resolveProject(ctx context.Context, app *App, input string) (domain.Project, error) {
	if strings.TrimSpace(input) == "" {
		return domain.Project{}, fmt.Errorf("--%s is required", projectFlag)
	}
	projects, err := app.Projects.List(ctx)
	if err != nil {
		return domain.Project{}, err
	}
	ids := make([]string, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
	}
	id, err := matchID("project", input, ids)
	if err != nil {
		return domain.Project{}, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, fmt.Errorf("project not found: %q", input)
}

// resolveTimelineItemID resolves an --item value against the timeline of
// projectID. A failed timeline read is returned as is, never as "not found".
func resolveTimelineItemID(ctx context.Context, app *App, projectID, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", fmt.Errorf("--%s is required", timelineItemFlag)
	}
	items, err := app.Projects.Timeline(ctx, projectID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return matchID("timeline item", input, ids)
}

// matchID picks the single id equal to input, or else the single id that
// starts with it.
func matchID(kind, input string, ids []string) (string, error) {
	for _, id := range ids {
		if id == input {
			return id, nil
		}
	}

	var matches []string
	for _, id := range ids {
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", kind, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", kind, input, len(matches))
	}
}
