package cli

import (
	"fmt"

	"github.com/alexanderramin/styring/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (email == "" || password == "") && app.interactive() {
				if err := credentialsForm(nil, &email, &password).Run(); err != nil {
					return err
				}
			}

			err := withSpinner(cmd, app, func() error {
				_, err := app.Auth.Login(cmd.Context(), email, password)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Innlogget som "+email))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "E-post")
	cmd.Flags().StringVar(&password, "password", "", "Passord")

	return cmd
}

func newRegisterCmd(app *App) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if (name == "" || email == "" || password == "") && app.interactive() {
				if err := credentialsForm(&name, &email, &password).Run(); err != nil {
					return err
				}
			}

			err := withSpinner(cmd, app, func() error {
				_, err := app.Auth.Register(cmd.Context(), name, email, password)
				return err
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.StyleGreen.Render("Konto opprettet for "+email))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Navn")
	cmd.Flags().StringVar(&email, "email", "", "E-post")
	cmd.Flags().StringVar(&password, "password", "", "Passord")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logget ut.")
			return nil
		},
	}
}

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the stored session",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show whether a credential is stored",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSessionStatus(app.Session.Credential(), app.BackendURL))
			return nil
		},
	})
	return cmd
}

// credentialsForm prompts for whatever the auth flags left out. A nil name
// means the login form.
func credentialsForm(name, email, password *string) *huh.Form {
	title := "Logg inn"
	var fields []huh.Field
	if name != nil {
		title = "Registrer konto"
		fields = append(fields, huh.NewInput().Title("Navn").Value(name))
	}
	fields = append(fields,
		huh.NewInput().Title("E-post").Value(email),
		huh.NewInput().Title("Passord").EchoMode(huh.EchoModePassword).Value(password),
	)
	return huh.NewForm(huh.NewGroup(fields...).Title(title)).
		WithTheme(styringHuhTheme()).
		WithShowHelp(false)
}

// withSpinner runs fn, showing a spinner on stderr when attached to a terminal.
func withSpinner(cmd *cobra.Command, app *App, fn func() error) error {
	var err error
	spin(cmd, app, func() { err = fn() })
	return err
}

// spin is withSpinner for work that cannot fail.
func spin(cmd *cobra.Command, app *App, fn func()) {
	if app.interactive() {
		stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Laster...")
		defer stop()
	}
	fn()
}
