package testutil

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/alexanderramin/styring/internal/api"
	"github.com/alexanderramin/styring/internal/contract"
	"github.com/alexanderramin/styring/internal/devserver"
	"github.com/alexanderramin/styring/internal/repository"
	"github.com/alexanderramin/styring/internal/session"
	"golang.org/x/crypto/bcrypt"
)

// Backend is a running in-memory backend together with a client whose
// session is persisted to an in-memory SQLite database.
type Backend struct {
	Server *devserver.Server
	URL    string
	Client *api.Client
	Store  *session.Store
	Repo   repository.CredentialRepo
}

// NewBackend starts a dev backend for the duration of the test.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	srv := devserver.New("test-secret", devserver.WithHashCost(bcrypt.MinCost))
	hs := httptest.NewServer(srv.Handler())
	t.Cleanup(hs.Close)

	repo := repository.NewSQLiteCredentialRepo(NewTestDB(t))
	store := session.NewStore(repo, hs.URL)
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("loading session: %v", err)
	}

	return &Backend{
		Server: srv,
		URL:    hs.URL,
		Client: api.NewClient(api.Config{BaseURL: hs.URL}, store, nil),
		Store:  store,
		Repo:   repo,
	}
}

// SignUp registers a user directly against the backend and stores the
// returned token in the session.
func (b *Backend) SignUp(t *testing.T, email, password string) string {
	t.Helper()
	ctx := context.Background()
	resp, err := b.Client.Register(ctx, contract.RegisterRequest{
		Email: email, Password: password, Name: "Test Bruker",
	})
	if err != nil {
		t.Fatalf("registering %s: %v", email, err)
	}
	if err := b.Store.Set(ctx, resp.AccessToken); err != nil {
		t.Fatalf("storing token: %v", err)
	}
	return resp.AccessToken
}
