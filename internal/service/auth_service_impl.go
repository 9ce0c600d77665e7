package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/styring/internal/api"
	"github.com/alexanderramin/styring/internal/contract"
)

type authService struct {
	backend  AuthBackend
	store    CredentialStore
	observer UseCaseObserver
}

func NewAuthService(backend AuthBackend, store CredentialStore, observers ...UseCaseObserver) AuthService {
	return &authService{
		backend:  backend,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (token string, err error) {
	done := track(ctx, s.observer, "login", map[string]any{})
	defer func() { done(err) }()

	req := contract.LoginRequest{Email: email, Password: password}
	if verr := req.Validate(); verr != nil {
		return "", &AuthError{Message: verr.Error(), Err: verr}
	}

	resp, err := s.backend.Login(ctx, req)
	if err != nil {
		return "", newAuthError(err)
	}
	return s.accept(ctx, resp)
}

func (s *authService) Register(ctx context.Context, name, email, password string) (token string, err error) {
	done := track(ctx, s.observer, "register", map[string]any{})
	defer func() { done(err) }()

	req := contract.RegisterRequest{Email: email, Password: password, Name: name}
	if verr := req.Validate(); verr != nil {
		return "", &AuthError{Message: verr.Error(), Err: verr}
	}

	resp, err := s.backend.Register(ctx, req)
	if err != nil {
		return "", newAuthError(err)
	}
	return s.accept(ctx, resp)
}

// accept stores the token from a successful auth response. A 2xx without a
// token is treated like any other failed login.
func (s *authService) accept(ctx context.Context, resp *contract.TokenResponse) (string, error) {
	if resp == nil || resp.AccessToken == "" {
		return "", newAuthError(api.ErrInvalidResponse)
	}
	if err := s.store.Set(ctx, resp.AccessToken); err != nil {
		return "", fmt.Errorf("saving session: %w", err)
	}
	return resp.AccessToken, nil
}

func (s *authService) Logout(ctx context.Context) (err error) {
	done := track(ctx, s.observer, "logout", map[string]any{})
	defer func() { done(err) }()

	if err = s.store.Clear(ctx); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

func (s *authService) Authenticated() bool {
	_, ok := s.store.Token()
	return ok
}
