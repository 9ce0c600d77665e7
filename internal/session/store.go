// Package session holds the client's credential: one opaque bearer token,
// kept in memory and mirrored to durable storage so it survives restarts.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alexanderramin/styring/internal/domain"
	"github.com/alexanderramin/styring/internal/repository"
)

// ErrNoCredential is returned by Require when nobody is signed in.
var ErrNoCredential = errors.New("not logged in (run `styring login`)")

// Store is the session context passed to everything that issues
// authenticated requests. Load must be called once before Token reflects
// the persisted state.
type Store struct {
	repo       repository.CredentialRepo
	backendURL string

	mu   sync.RWMutex
	cred *domain.Credential
}

// NewStore creates a Store persisting through repo. backendURL is recorded
// next to the token for display only.
func NewStore(repo repository.CredentialRepo, backendURL string) *Store {
	return &Store{repo: repo, backendURL: backendURL}
}

// Load reads the persisted credential into memory. A missing credential is
// not an error.
func (s *Store) Load(ctx context.Context) error {
	c, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.mu.Lock()
			s.cred = nil
			s.mu.Unlock()
			return nil
		}
		return fmt.Errorf("loading credential: %w", err)
	}

	s.mu.Lock()
	s.cred = c
	s.mu.Unlock()
	return nil
}

// Token returns the current credential and whether one is held.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil || s.cred.Token == "" {
		return "", false
	}
	return s.cred.Token, true
}

// Credential returns a copy of the held credential, or nil.
func (s *Store) Credential() *domain.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cred == nil {
		return nil
	}
	c := *s.cred
	return &c
}

// Require is Token for callers that cannot proceed without a credential.
func (s *Store) Require() (string, error) {
	tok, ok := s.Token()
	if !ok {
		return "", ErrNoCredential
	}
	return tok, nil
}

// Set persists token and then makes it the in-memory credential. Memory is
// only updated once the write succeeded.
func (s *Store) Set(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("saving credential: empty token")
	}
	c := &domain.Credential{Token: token, BackendURL: s.backendURL}
	if err := s.repo.Save(ctx, c); err != nil {
		return err
	}

	s.mu.Lock()
	s.cred = c
	s.mu.Unlock()
	return nil
}

// Clear drops the in-memory credential and removes the persisted one.
// Memory is cleared even if the delete fails.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.cred = nil
	s.mu.Unlock()
	return s.repo.Clear(ctx)
}
