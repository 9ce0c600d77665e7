package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/styring/internal/cli/formatter"
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// projectsLoadedMsg signals that project list data has been loaded.
type projectsLoadedMsg struct {
	projects []domain.Project
	err      error
}

// projectCreatedMsg reports the outcome of creating a project.
type projectCreatedMsg struct {
	project *domain.Project
	err     error
}

// projectListView shows the user's projects and the "Nytt prosjekt" input.
type projectListView struct {
	state    *SharedState
	projects []domain.Project
	cursor   int
	loading  bool
	err      error

	creating bool
	input    textinput.Model
}

func newProjectListView(state *SharedState) *projectListView {
	ti := textinput.New()
	ti.Placeholder = "Nytt prosjekt"
	ti.Prompt = formatter.StyleYellow.Render("+ ")
	ti.CharLimit = 200

	return &projectListView{
		state:   state,
		loading: true,
		input:   ti,
	}
}

func (v *projectListView) ID() ViewID    { return ViewProjectList }
func (v *projectListView) Title() string { return formatter.SectionProjects }

// CapturesInput is true while a project name is being typed.
func (v *projectListView) CapturesInput() bool { return v.creating }

func (v *projectListView) ShortHelp() []key.Binding {
	if v.creating {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "opprett")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "avbryt")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "åpne")),
		key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "nytt prosjekt")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "oppdater")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "avslutt")),
	}
}

func (v *projectListView) Init() tea.Cmd {
	return v.loadProjects()
}

func (v *projectListView) loadProjects() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		projects, err := app.Projects.List(context.Background())
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (v *projectListView) createProject(name string) tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		p, err := app.Projects.Create(context.Background(), name)
		return projectCreatedMsg{project: p, err: err}
	}
}

func (v *projectListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			return v, nil
		}
		v.projects = msg.projects
		v.cursor = min(v.cursor, max(len(v.projects)-1, 0))
		return v, nil

	case projectCreatedMsg:
		if msg.err != nil {
			return v, outputCmd(formatter.Error(msg.err))
		}
		return v, v.loadProjects()

	case tea.KeyMsg:
		if v.creating {
			return v.updateCreate(msg)
		}
		return v.updateNormal(msg)
	}

	if v.creating {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *projectListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.projects)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(v.projects) {
			p := v.projects[v.cursor]
			v.state.SetActiveProjectFrom(p)
			return v, pushView(newProjectDetailView(v.state, p))
		}
	case "n":
		v.creating = true
		v.input.SetValue("")
		return v, v.input.Focus()
	case "r":
		v.loading = true
		return v, v.loadProjects()
	}
	return v, nil
}

func (v *projectListView) updateCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.creating = false
		v.input.Blur()
		return v, nil
	case tea.KeyEnter:
		name := strings.TrimSpace(v.input.Value())
		v.creating = false
		v.input.Blur()
		return v, v.createProject(name)
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *projectListView) View() string {
	if v.loading {
		return "\n  " + formatter.Dim("Laster...")
	}
	if v.err != nil {
		return "\n  " + formatter.Error(v.err)
	}

	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(formatter.SectionProjects) + "\n\n")

	if v.creating {
		b.WriteString("  " + v.input.View() + "\n\n")
	}

	if len(v.projects) == 0 {
		b.WriteString("  " + formatter.Dim("Ingen prosjekter ennå.") + "\n")
		b.WriteString("  " + formatter.Dim(formatter.EmptyHint) + "\n")
		return b.String()
	}

	for i, p := range v.projects {
		cursor := "  "
		nameStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			nameStyle = formatter.StyleBold
		}
		active := " "
		if p.ID == v.state.ActiveProjectID {
			active = formatter.StyleYellow.Render("●")
		}

		b.WriteString(fmt.Sprintf("  %s%s %s  %s\n",
			cursor,
			active,
			formatter.TruncID(p.ID),
			nameStyle.Render(formatter.PadRight(p.Name, 40)),
		))
	}

	if v.state.ActiveProjectID == "" {
		b.WriteString("\n  " + formatter.Dim(formatter.EmptyHint) + "\n")
	}

	return b.String()
}
