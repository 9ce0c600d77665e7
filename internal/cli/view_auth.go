package cli

import (
	"context"
	"strings"

	"github.com/alexanderramin/styring/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

// authResultMsg reports the outcome of a login or register request.
type authResultMsg struct {
	err error
}

var toggleAuthModeKey = key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "bytt"))

// authView is the gate shown while no credential is held. It submits once
// per completed form and ignores input while a request is in flight.
type authView struct {
	state *SharedState
	mode  authMode

	name, email, password string

	form    *huh.Form
	loading bool
	err     error
}

func newAuthView(state *SharedState) *authView {
	v := &authView{state: state}
	v.form = v.buildForm()
	return v
}

func (v *authView) ID() ViewID { return ViewAuth }

func (v *authView) Title() string {
	if v.mode == authRegister {
		return "Registrer konto"
	}
	return "Logg inn"
}

func (v *authView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "neste")),
		toggleAuthModeKey,
		key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "avslutt")),
	}
}

func (v *authView) buildForm() *huh.Form {
	var fields []huh.Field
	if v.mode == authRegister {
		fields = append(fields, huh.NewInput().Title("Navn").Value(&v.name))
	}
	fields = append(fields,
		huh.NewInput().Title("E-post").Value(&v.email),
		huh.NewInput().Title("Passord").EchoMode(huh.EchoModePassword).Value(&v.password),
	)
	return newForm(huh.NewGroup(fields...))
}

func (v *authView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *authView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case authResultMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			v.password = ""
			v.form = v.buildForm()
			return v, v.form.Init()
		}
		return v, replaceView(newProjectListView(v.state))

	case tea.KeyMsg:
		if v.loading {
			return v, nil
		}
		if key.Matches(msg, toggleAuthModeKey) {
			if v.mode == authLogin {
				v.mode = authRegister
			} else {
				v.mode = authLogin
			}
			v.err = nil
			v.form = v.buildForm()
			return v, v.form.Init()
		}
	}

	if v.loading {
		return v, nil
	}

	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted {
		v.loading = true
		v.err = nil
		return v, v.submit()
	}
	return v, cmd
}

// submit sends exactly one auth request with the form's current values.
func (v *authView) submit() tea.Cmd {
	auth := v.state.App.Auth
	mode, name, email, password := v.mode, v.name, strings.TrimSpace(v.email), v.password
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if mode == authRegister {
			_, err = auth.Register(ctx, name, email, password)
		} else {
			_, err = auth.Login(ctx, email, password)
		}
		return authResultMsg{err: err}
	}
}

func (v *authView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + formatter.Header(v.Title()) + "\n\n")

	if v.loading {
		b.WriteString("  " + formatter.Dim("Laster...") + "\n")
		return b.String()
	}

	b.WriteString(v.form.View())
	b.WriteString("\n")
	if v.err != nil {
		b.WriteString("\n  " + formatter.StyleRed.Render(v.err.Error()) + "\n")
	}

	hint := "Har du ikke konto? Registrer (ctrl+t)"
	if v.mode == authRegister {
		hint = "Har du konto? Logg inn (ctrl+t)"
	}
	b.WriteString("\n  " + formatter.Dim(hint) + "\n")
	return b.String()
}
