package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/styring/internal/domain"
)

const (
	// EmptyHint is shown when no project is selected.
	EmptyHint = "Velg eller opprett et prosjekt for å starte."

	AppTitle    = "Styring & Internrevisjon"
	AppSubtitle = "Målkort • Handlingsplan • Tidslinje"

	SectionProjects  = "Prosjekter"
	SectionScorecard = "Målkort (Scorecard)"
	SectionActions   = "Handlingsplan"
	SectionTimeline  = "Tidslinje"
)

// FormatProjectList renders the user's projects in a bordered box. The
// project with activeID is marked.
func FormatProjectList(projects []domain.Project, activeID string) string {
	if len(projects) == 0 {
		return RenderBox(SectionProjects, Dim("Ingen prosjekter ennå.")+"\n"+Dim(EmptyHint))
	}

	headers := []string{"", "ID", "NAVN"}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		marker := " "
		name := p.Name
		if p.ID == activeID {
			marker = StyleGreen.Render("▸")
			name = Bold(name)
		}
		rows = append(rows, []string{marker, TruncID(p.ID), name})
	}
	return RenderBox(SectionProjects, RenderTable(headers, rows))
}

// FormatProjectView renders the three dashboard sections for one project.
func FormatProjectView(p domain.Project, v *domain.ProjectView) string {
	var b strings.Builder
	b.WriteString(Bold(p.Name) + "  " + TruncID(p.ID) + "\n\n")
	b.WriteString(FormatScorecard(v.Metrics))
	b.WriteString("\n")
	b.WriteString(FormatActionPlan(v.Actions))
	b.WriteString("\n")
	b.WriteString(FormatTimeline(v))
	if v.FailedReads > 0 {
		b.WriteString("\n" + StyleYellow.Render(fmt.Sprintf("%d lesing(er) feilet; noen lister kan være ufullstendige.", v.FailedReads)) + "\n")
	}
	return b.String()
}

// FormatScorecard renders one line per metric: title, current/target unit
// and a progress bar.
func FormatScorecard(metrics []domain.Metric) string {
	var b strings.Builder
	b.WriteString(Header(SectionScorecard) + "\n")
	if len(metrics) == 0 {
		b.WriteString(Dim("Ingen mål.") + "\n")
		return b.String()
	}
	for _, m := range metrics {
		value := fmt.Sprintf("%s/%s %s", FormatNumber(m.CurrentValue), FormatNumber(m.TargetValue), m.Unit)
		fmt.Fprintf(&b, "%s  %s  %s\n", PadRight(m.Title, 28), PadRight(strings.TrimSpace(value), 16), RenderProgress(m.Progress(), 12))
		if m.Description != "" {
			b.WriteString("  " + Dim(m.Description) + "\n")
		}
	}
	return b.String()
}

// FormatActionPlan renders actions with their status pill.
func FormatActionPlan(actions []domain.Action) string {
	var b strings.Builder
	b.WriteString(Header(SectionActions) + "\n")
	if len(actions) == 0 {
		b.WriteString(Dim("Ingen tiltak.") + "\n")
		return b.String()
	}
	for _, a := range actions {
		fmt.Fprintf(&b, "%s  %s\n", PadRight(a.Title, 40), StatusPill(string(a.Status)))
		if a.Description != "" {
			b.WriteString("  " + Dim(a.Description) + "\n")
		}
	}
	return b.String()
}

// FormatTimeline renders every timeline item with its tasks, comments and
// documents nested beneath it.
func FormatTimeline(v *domain.ProjectView) string {
	var b strings.Builder
	b.WriteString(Header(SectionTimeline) + "\n")
	if len(v.Timeline) == 0 {
		b.WriteString(Dim("Ingen hendelser.") + "\n")
		return b.String()
	}
	for i, item := range v.Timeline {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s  %s  %s\n", TimelineBadge(item.Type), Bold(item.Title), Dim(DateRange(item)))

		for _, t := range v.TasksFor(item.ID) {
			fmt.Fprintf(&b, "  %s %s  %s\n", Dim("•"), t.Title, StatusPill(string(t.Status)))
			if t.Description != "" {
				b.WriteString("    " + Dim(t.Description) + "\n")
			}
		}
		for _, c := range domain.CommentsFor(v.Comments, item.ID) {
			fmt.Fprintf(&b, "  %s %s\n", StyleBlue.Render("✎"), c.Content)
		}
		for _, d := range domain.DocumentsFor(v.Documents, item.ID) {
			fmt.Fprintf(&b, "  %s %s  %s\n", StylePurple.Render("⎘"), d.Name, Dim("Åpne: "+d.URL))
		}
	}
	return b.String()
}

// FormatSessionStatus describes the stored session for `styring session status`.
func FormatSessionStatus(cred *domain.Credential, backendURL string) string {
	if cred == nil {
		return fmt.Sprintf("%s  %s\n%s  %s\n",
			StyleDim.Render("STATUS "), StyleYellow.Render("Ikke innlogget"),
			StyleDim.Render("BACKEND"), backendURL)
	}
	saved := "--"
	if !cred.SavedAt.IsZero() {
		saved = cred.SavedAt.Local().Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%s  %s\n%s  %s\n%s  %s\n",
		StyleDim.Render("STATUS "), StyleGreen.Render("Innlogget"),
		StyleDim.Render("BACKEND"), cred.BackendURL,
		StyleDim.Render("LAGRET "), saved)
}
