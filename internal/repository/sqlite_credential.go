package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/styring/internal/db"
	"github.com/alexanderramin/styring/internal/domain"
)

const credentialRowID = "default"

// SQLiteCredentialRepo implements CredentialRepo using a SQLite database.
type SQLiteCredentialRepo struct {
	db db.DBTX
}

// NewSQLiteCredentialRepo creates a new SQLiteCredentialRepo.
func NewSQLiteCredentialRepo(conn db.DBTX) *SQLiteCredentialRepo {
	return &SQLiteCredentialRepo{db: conn}
}

func (r *SQLiteCredentialRepo) Get(ctx context.Context) (*domain.Credential, error) {
	query := `SELECT token, backend_url, saved_at FROM credentials WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, credentialRowID)

	var (
		c       domain.Credential
		savedAt string
	)
	if err := row.Scan(&c.Token, &c.BackendURL, &savedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("credential: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning credential: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, savedAt); err == nil {
		c.SavedAt = t
	}
	return &c, nil
}

func (r *SQLiteCredentialRepo) Save(ctx context.Context, c *domain.Credential) error {
	if c.SavedAt.IsZero() {
		c.SavedAt = time.Now().UTC()
	}
	query := `INSERT OR REPLACE INTO credentials (id, token, backend_url, saved_at)
		VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		credentialRowID,
		c.Token,
		c.BackendURL,
		c.SavedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving credential: %w", err)
	}
	return nil
}

func (r *SQLiteCredentialRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM credentials WHERE id = ?`, credentialRowID); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	return nil
}
