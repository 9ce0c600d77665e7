package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/styring/internal/cli/formatter"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/alexanderramin/styring/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// detailLoadedMsg carries a finished load and the generation it was
// started under.
type detailLoadedMsg struct {
	gen  service.Generation
	view *domain.ProjectView
}

// projectDetailView renders the scorecard, action plan and timeline of one
// project and hosts the creation forms.
type projectDetailView struct {
	state   *SharedState
	project domain.Project

	gen     service.Generation
	view    *domain.ProjectView
	loading bool

	vp      viewport.Model
	vpReady bool
}

func newProjectDetailView(state *SharedState, p domain.Project) *projectDetailView {
	return &projectDetailView{state: state, project: p}
}

func (v *projectDetailView) ID() ViewID    { return ViewProjectDetail }
func (v *projectDetailView) Title() string { return v.project.Name }

func (v *projectDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mål")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "tiltak")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "hendelse")),
		key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "oppgave")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "kommentar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dokument")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "oppdater")),
	}
}

func (v *projectDetailView) Init() tea.Cmd {
	return v.reload()
}

// reload starts a new generation; any load still in flight becomes stale.
func (v *projectDetailView) reload() tea.Cmd {
	loader := v.state.App.Loader
	v.gen = loader.Begin(v.project.ID)
	v.loading = true

	gen, projectID := v.gen, v.project.ID
	return func() tea.Msg {
		return detailLoadedMsg{gen: gen, view: loader.Load(context.Background(), projectID)}
	}
}

func (v *projectDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case detailLoadedMsg:
		if !v.state.App.Loader.Current(msg.gen) || msg.gen.ProjectID != v.project.ID {
			return v, nil
		}
		v.loading = false
		v.view = msg.view
		v.refreshContent()
		return v, nil

	case writeResultMsg:
		if msg.err != nil {
			return v, outputCmd(formatter.Error(msg.err))
		}
		return v, v.reload()

	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *projectDetailView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.loading || v.view == nil {
		return v, nil
	}
	app, projectID := v.state.App, v.project.ID

	switch msg.String() {
	case "r":
		return v, v.reload()

	case "m":
		f := newMetricFields()
		return v, startWizardCmd(v.state, "Nytt mål", f.form(), func() tea.Cmd {
			return writeCmd(app, "metric", func(ctx context.Context, app *App) error {
				_, err := app.Entities.CreateMetric(ctx, f.request(projectID))
				return err
			})
		})

	case "a":
		f := &actionFields{}
		return v, startWizardCmd(v.state, "Nytt tiltak", f.form(), func() tea.Cmd {
			return writeCmd(app, "action", func(ctx context.Context, app *App) error {
				_, err := app.Entities.CreateAction(ctx, f.request(projectID))
				return err
			})
		})

	case "t":
		f := newTimelineFields()
		return v, startWizardCmd(v.state, "Ny hendelse", f.form(), func() tea.Cmd {
			return writeCmd(app, "timeline item", func(ctx context.Context, app *App) error {
				_, err := app.Entities.CreateTimelineItem(ctx, f.request(projectID))
				return err
			})
		})

	case "k", "c", "d":
		items := v.view.Timeline
		if len(items) == 0 {
			return v, outputCmd(formatter.StyleYellow.Render("Legg til en hendelse i tidslinjen først."))
		}
		return v, v.startAttachedWizard(msg.String(), items)

	case "up", "down", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *projectDetailView) startAttachedWizard(k string, items []domain.TimelineItem) tea.Cmd {
	app, projectID := v.state.App, v.project.ID
	f := newAttachedFields(items)

	switch k {
	case "k":
		return startWizardCmd(v.state, "Ny oppgave", f.taskForm(items), func() tea.Cmd {
			return writeCmd(app, "task", func(ctx context.Context, app *App) error {
				_, err := app.Entities.CreateTask(ctx, f.taskRequest(projectID))
				return err
			})
		})
	case "c":
		return startWizardCmd(v.state, "Ny kommentar", f.commentForm(items), func() tea.Cmd {
			return writeCmd(app, "comment", func(ctx context.Context, app *App) error {
				_, err := app.Entities.CreateComment(ctx, f.commentRequest(projectID))
				return err
			})
		})
	default:
		return startWizardCmd(v.state, "Nytt dokument", f.documentForm(items), func() tea.Cmd {
			return writeCmd(app, "document", func(ctx context.Context, app *App) error {
				_, err := app.Entities.CreateDocument(ctx, f.documentRequest(projectID))
				return err
			})
		})
	}
}

func (v *projectDetailView) resize() {
	w := max(v.state.Width, 20)
	h := max(v.state.ContentHeight(), 1)
	if !v.vpReady {
		v.vp = viewport.New(w, h)
		v.vpReady = true
	} else {
		v.vp.Width, v.vp.Height = w, h
	}
	v.refreshContent()
}

func (v *projectDetailView) refreshContent() {
	if v.view == nil {
		return
	}
	if !v.vpReady {
		v.resize()
		return
	}
	v.vp.SetContent(indent(formatter.FormatProjectView(v.project, v.view), "  "))
}

func (v *projectDetailView) View() string {
	if v.view == nil {
		return "\n  " + formatter.Dim("Laster...")
	}
	out := "\n" + v.vp.View()
	if v.loading {
		out = "\n  " + formatter.Dim("Oppdaterer...") + out
	}
	return out
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
