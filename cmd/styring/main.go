package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/styring/internal/api"
	"github.com/alexanderramin/styring/internal/cli"
	"github.com/alexanderramin/styring/internal/config"
	"github.com/alexanderramin/styring/internal/db"
	"github.com/alexanderramin/styring/internal/repository"
	"github.com/alexanderramin/styring/internal/service"
	"github.com/alexanderramin/styring/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// --backend overrides the environment. It is read before cobra parses
	// flags because the client has to exist before any command runs.
	if override := cli.BackendFromArgs(os.Args[1:]); override != "" {
		cfg.BackendURL = config.NormalizeBackendURL(override)
	}

	dbPath, err := cfg.SessionDBPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening session database: %w", err)
	}
	defer database.Close()

	store := session.NewStore(repository.NewSQLiteCredentialRepo(database), cfg.BackendURL)
	if err := store.Load(context.Background()); err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	var (
		callObserver    api.Observer            = api.NoopObserver{}
		useCaseObserver service.UseCaseObserver = service.NoopUseCaseObserver{}
	)
	if cfg.LogCalls {
		callObserver = api.NewLogObserver(os.Stderr)
		useCaseObserver = service.NewLogUseCaseObserver(os.Stderr)
	}

	client := api.NewClient(api.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.HTTPTimeout(),
	}, store, callObserver)

	app := &cli.App{
		Auth:       service.NewAuthService(client, store, useCaseObserver),
		Projects:   service.NewProjectService(client, useCaseObserver),
		Entities:   service.NewEntityService(client, useCaseObserver),
		Loader:     service.NewDetailLoader(client, useCaseObserver),
		Session:    store,
		BackendURL: cfg.BackendURL,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
