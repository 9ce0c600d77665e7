package cli

import (
	"github.com/alexanderramin/styring/internal/domain"
	"github.com/alexanderramin/styring/internal/service"
	"github.com/spf13/cobra"
)

// SessionInfo exposes the stored credential. session.Store satisfies it.
type SessionInfo interface {
	Credential() *domain.Credential
	// Require returns the token, or session.ErrNoCredential when signed out.
	Require() (string, error)
}

// App holds references to all service interfaces used by CLI commands and
// the TUI.
type App struct {
	Auth     service.AuthService
	Projects service.ProjectService
	Entities service.EntityService
	Loader   *service.DetailLoader
	Session  SessionInfo

	// BackendURL is the normalized backend base URL, shown in status output.
	BackendURL string

	// IsInteractive reports whether stdin is a terminal. A bare `styring`
	// starts the dashboard only when it returns true.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// requireLogin fails fast, before any request, when no credential is held.
func (a *App) requireLogin() error {
	_, err := a.Session.Require()
	return err
}

// NewRootCmd creates the top-level "styring" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "styring",
		Short: "Styring & Internrevisjon: målkort, handlingsplan og tidslinje",
		Long: `styring is a terminal client for the governance backend.

Run it without arguments in a terminal to open the dashboard, or use the
subcommands below for one-shot operations.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				return runDashboard(cmd, app)
			}
			return cmd.Help()
		},
	}

	// Parsed early by main (see BackendFromArgs); declared here so cobra
	// accepts it and lists it in help.
	root.PersistentFlags().String(backendFlag, "", "Backend base URL (overrides STYRING_BACKEND_URL)")

	root.AddCommand(
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newSessionCmd(app),
		newProjectCmd(app),
		newMetricCmd(app),
		newActionCmd(app),
		newTimelineCmd(app),
		newTaskCmd(app),
		newCommentCmd(app),
		newDocumentCmd(app),
		newDashboardCmd(app),
	)

	return root
}
