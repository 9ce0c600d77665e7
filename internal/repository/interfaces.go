package repository

import (
	"context"

	"github.com/alexanderramin/styring/internal/domain"
)

// CredentialRepo persists the single stored credential.
type CredentialRepo interface {
	Get(ctx context.Context) (*domain.Credential, error)
	Save(ctx context.Context, c *domain.Credential) error
	Clear(ctx context.Context) error
}
