package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/styring/internal/cli/formatter"
	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// styringHuhTheme returns a huh theme using the Gruvbox palette.
func styringHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(styringHuhTheme()).WithShowHelp(false)
}

// validateOptionalNumber accepts empty or any decimal number. Only numeric
// coercion is checked; ranges are the backend's business.
func validateOptionalNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64); err != nil {
		return fmt.Errorf("skriv inn et tall")
	}
	return nil
}

// parseNumber converts form input to a float, returning fallback for blank
// input. Decimal commas are accepted.
func parseNumber(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil {
		return fallback
	}
	return v
}

// timelineOptions lists the project's timeline items for a huh.Select.
func timelineOptions(items []domain.TimelineItem) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(items))
	for _, t := range items {
		label := fmt.Sprintf("%s  %s", strings.ToUpper(string(t.Type)), t.Title)
		if day := t.StartDay(); day != "" {
			label += "  (" + day + ")"
		}
		opts = append(opts, huh.NewOption(label, t.ID))
	}
	return opts
}

// createFunc performs one entity write. It is run off the UI goroutine.
type createFunc func(ctx context.Context, app *App) error

// writeResultMsg reports the outcome of an entity write to the detail view.
type writeResultMsg struct {
	entity string
	err    error
}

// writeCmd runs create and reports the result as a writeResultMsg.
func writeCmd(app *App, entity string, create createFunc) tea.Cmd {
	return func() tea.Msg {
		return writeResultMsg{entity: entity, err: create(context.Background(), app)}
	}
}

// ── metric ───────────────────────────────────────────────────────────────────

type metricFields struct {
	title, description, target, current, unit string
}

func newMetricFields() *metricFields {
	return &metricFields{
		target:  formatter.FormatNumber(contract.DefaultMetricTarget),
		current: formatter.FormatNumber(contract.DefaultMetricCurrent),
		unit:    contract.DefaultMetricUnit,
	}
}

func (f *metricFields) form() *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewInput().Title("Mål").Value(&f.title),
		huh.NewInput().Title("Beskrivelse").Value(&f.description),
		huh.NewInput().Title("Målverdi").Value(&f.target).Validate(validateOptionalNumber),
		huh.NewInput().Title("Nå").Value(&f.current).Validate(validateOptionalNumber),
		huh.NewInput().Title("Enhet").Value(&f.unit),
	).Title(formatter.SectionScorecard))
}

func (f *metricFields) request(projectID string) contract.CreateMetricRequest {
	req := contract.NewCreateMetricRequest(projectID)
	req.Title = strings.TrimSpace(f.title)
	req.Description = strings.TrimSpace(f.description)
	req.TargetValue = parseNumber(f.target, contract.DefaultMetricTarget)
	req.CurrentValue = parseNumber(f.current, contract.DefaultMetricCurrent)
	req.Unit = strings.TrimSpace(f.unit)
	return req
}

// ── action ───────────────────────────────────────────────────────────────────

type actionFields struct {
	title, description string
}

func (f *actionFields) form() *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewInput().Title("Tiltak").Value(&f.title),
		huh.NewInput().Title("Beskrivelse").Value(&f.description),
	).Title(formatter.SectionActions))
}

func (f *actionFields) request(projectID string) contract.CreateActionRequest {
	return contract.CreateActionRequest{
		ProjectID:   projectID,
		Title:       strings.TrimSpace(f.title),
		Description: strings.TrimSpace(f.description),
	}
}

// ── timeline item ────────────────────────────────────────────────────────────

type timelineFields struct {
	title string
	typ   domain.TimelineType
}

func newTimelineFields() *timelineFields {
	return &timelineFields{typ: domain.TimelineMilestone}
}

func (f *timelineFields) form() *huh.Form {
	opts := make([]huh.Option[domain.TimelineType], 0, len(domain.TimelineTypes))
	for _, t := range domain.TimelineTypes {
		opts = append(opts, huh.NewOption(t.Label(), t))
	}
	return newForm(huh.NewGroup(
		huh.NewInput().Title("Tittel").Value(&f.title),
		huh.NewSelect[domain.TimelineType]().Title("Type").Options(opts...).Value(&f.typ),
	).Title(formatter.SectionTimeline))
}

func (f *timelineFields) request(projectID string) contract.CreateTimelineItemRequest {
	req := contract.NewCreateTimelineItemRequest(projectID)
	req.Title = strings.TrimSpace(f.title)
	req.Type = f.typ
	return req
}

// ── task / comment / document ────────────────────────────────────────────────

// attachedFields holds the inputs for entities hanging off a timeline item.
// Only the fields the entity uses are shown.
type attachedFields struct {
	itemID  string
	title   string
	content string
	name    string
	url     string
}

func newAttachedFields(items []domain.TimelineItem) *attachedFields {
	f := &attachedFields{}
	if len(items) > 0 {
		f.itemID = items[0].ID
	}
	return f
}

func (f *attachedFields) itemSelect(items []domain.TimelineItem) huh.Field {
	return huh.NewSelect[string]().
		Title("Hendelse").
		Options(timelineOptions(items)...).
		Value(&f.itemID)
}

func (f *attachedFields) taskForm(items []domain.TimelineItem) *huh.Form {
	return newForm(huh.NewGroup(
		f.itemSelect(items),
		huh.NewInput().Title("Ny oppgave").Value(&f.title),
	))
}

func (f *attachedFields) commentForm(items []domain.TimelineItem) *huh.Form {
	return newForm(huh.NewGroup(
		f.itemSelect(items),
		huh.NewInput().Title("Skriv en kommentar").Value(&f.content),
	))
}

func (f *attachedFields) documentForm(items []domain.TimelineItem) *huh.Form {
	return newForm(huh.NewGroup(
		f.itemSelect(items),
		huh.NewInput().Title("Dokumentnavn").Value(&f.name),
		huh.NewInput().Title("URL").Value(&f.url),
	))
}

func (f *attachedFields) taskRequest(projectID string) contract.CreateTaskRequest {
	return contract.CreateTaskRequest{ProjectID: projectID, TimelineItemID: f.itemID, Title: strings.TrimSpace(f.title)}
}

func (f *attachedFields) commentRequest(projectID string) contract.CreateCommentRequest {
	return contract.CreateCommentRequest{ProjectID: projectID, TimelineItemID: f.itemID, Content: strings.TrimSpace(f.content)}
}

func (f *attachedFields) documentRequest(projectID string) contract.CreateDocumentRequest {
	return contract.CreateDocumentRequest{
		ProjectID:      projectID,
		TimelineItemID: f.itemID,
		Name:           strings.TrimSpace(f.name),
		URL:            strings.TrimSpace(f.url),
	}
}
