package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/styring/internal/cli/formatter"
	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/spf13/cobra"
)

// entityGroup wraps an "add" subcommand in its noun command, e.g. `metric add`.
func entityGroup(use, short string, add *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{Use: use, Short: short}
	cmd.AddCommand(add)
	return cmd
}

// runCreate resolves --project, runs create against it and reports the
// created entity.
func runCreate(cmd *cobra.Command, app *App, projectInput string, create func(ctx context.Context, projectID string) (label string, id string, err error)) error {
	if err := app.requireLogin(); err != nil {
		return err
	}
	ctx := cmd.Context()
	projectID, err := resolveProjectID(ctx, app, projectInput)
	if err != nil {
		return err
	}
	label, id, err := create(ctx, projectID)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Lagt til %s %s\n", label, formatter.TruncID(id))
	return nil
}

func newMetricCmd(app *App) *cobra.Command {
	var project string
	req := contract.NewCreateMetricRequest("")

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a metric to the scorecard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, app, project, func(ctx context.Context, projectID string) (string, string, error) {
				req.ProjectID = projectID
				m, err := app.Entities.CreateMetric(ctx, req)
				if err != nil {
					return "", "", err
				}
				return fmt.Sprintf("mål %q", m.Title), m.ID, nil
			})
		},
	}

	fs := add.Flags()
	addProjectFlag(fs, &project)
	fs.StringVar(&req.Title, "title", "", "Mål")
	fs.StringVar(&req.Description, "description", "", "Beskrivelse")
	fs.Float64Var(&req.TargetValue, "target", contract.DefaultMetricTarget, "Målverdi")
	fs.Float64Var(&req.CurrentValue, "current", contract.DefaultMetricCurrent, "Nåverdi")
	fs.StringVar(&req.Unit, "unit", contract.DefaultMetricUnit, "Enhet")

	return entityGroup("metric", "Scorecard metrics (Målkort)", add)
}

func newActionCmd(app *App) *cobra.Command {
	var project string
	var req contract.CreateActionRequest

	add := &cobra.Command{
		Use:   "add",
		Short: "Add an action to the action plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, app, project, func(ctx context.Context, projectID string) (string, string, error) {
				req.ProjectID = projectID
				a, err := app.Entities.CreateAction(ctx, req)
				if err != nil {
					return "", "", err
				}
				return fmt.Sprintf("tiltak %q", a.Title), a.ID, nil
			})
		},
	}

	fs := add.Flags()
	addProjectFlag(fs, &project)
	fs.StringVar(&req.Title, "title", "", "Tiltak")
	fs.StringVar(&req.Description, "description", "", "Beskrivelse")

	return entityGroup("action", "Action plan (Handlingsplan)", add)
}

func newTimelineCmd(app *App) *cobra.Command {
	var project, typ string
	var req contract.CreateTimelineItemRequest

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a milestone, task, review or audit to the timeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, app, project, func(ctx context.Context, projectID string) (string, string, error) {
				req.ProjectID = projectID
				req.Type = domain.TimelineType(typ)
				item, err := app.Entities.CreateTimelineItem(ctx, req)
				if err != nil {
					return "", "", err
				}
				return fmt.Sprintf("%s %q", item.Type.Label(), item.Title), item.ID, nil
			})
		},
	}

	fs := add.Flags()
	addProjectFlag(fs, &project)
	fs.StringVar(&req.Title, "title", "", "Tittel")
	fs.StringVar(&typ, "type", string(domain.TimelineMilestone), "milestone, task, review or audit")

	return entityGroup("timeline", "Project timeline (Tidslinje)", add)
}

func newTaskCmd(app *App) *cobra.Command {
	var project, item string
	var req contract.CreateTaskRequest

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a timeline item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, app, project, func(ctx context.Context, projectID string) (string, string, error) {
				itemID, err := resolveTimelineItemID(ctx, app, projectID, item)
				if err != nil {
					return "", "", err
				}
				req.ProjectID, req.TimelineItemID = projectID, itemID
				t, err := app.Entities.CreateTask(ctx, req)
				if err != nil {
					return "", "", err
				}
				return fmt.Sprintf("oppgave %q", t.Title), t.ID, nil
			})
		},
	}

	fs := add.Flags()
	addProjectFlag(fs, &project)
	addTimelineItemFlag(fs, &item)
	fs.StringVar(&req.Title, "title", "", "Ny oppgave")

	return entityGroup("task", "Tasks on timeline items", add)
}

func newCommentCmd(app *App) *cobra.Command {
	var project, item string
	var req contract.CreateCommentRequest

	add := &cobra.Command{
		Use:   "add",
		Short: "Comment on a timeline item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, app, project, func(ctx context.Context, projectID string) (string, string, error) {
				itemID, err := resolveTimelineItemID(ctx, app, projectID, item)
				if err != nil {
					return "", "", err
				}
				req.ProjectID, req.TimelineItemID = projectID, itemID
				c, err := app.Entities.CreateComment(ctx, req)
				if err != nil {
					return "", "", err
				}
				return "kommentar", c.ID, nil
			})
		},
	}

	fs := add.Flags()
	addProjectFlag(fs, &project)
	addTimelineItemFlag(fs, &item)
	fs.StringVar(&req.Content, "content", "", "Skriv en kommentar")

	return entityGroup("comment", "Comments on timeline items", add)
}

func newDocumentCmd(app *App) *cobra.Command {
	var project, item string
	var req contract.CreateDocumentRequest

	add := &cobra.Command{
		Use:   "add",
		Short: "Attach a document link to a timeline item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, app, project, func(ctx context.Context, projectID string) (string, string, error) {
				itemID, err := resolveTimelineItemID(ctx, app, projectID, item)
				if err != nil {
					return "", "", err
				}
				req.ProjectID, req.TimelineItemID = projectID, itemID
				d, err := app.Entities.CreateDocument(ctx, req)
				if err != nil {
					return "", "", err
				}
				return fmt.Sprintf("dokument %q", d.Name), d.ID, nil
			})
		},
	}

	fs := add.Flags()
	addProjectFlag(fs, &project)
	addTimelineItemFlag(fs, &item)
	fs.StringVar(&req.Name, "name", "", "Dokumentnavn")
	fs.StringVar(&req.URL, "url", "", "URL")

	return entityGroup("document", "Document links on timeline items", add)
}
