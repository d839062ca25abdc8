package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/learning-platform/authhooks/pkg/claims"
)

// Store is the Postgres-backed tenant user store
type Store struct {
	db *sql.DB
}

// NewStore creates a tenant user store
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// UserExists reports whether a user record exists for the tenant and email
func (s *Store) UserExists(ctx context.Context, tenantID, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM tenant_users
			WHERE tenant_id = $1 AND email = $2
		)
	`, tenantID, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

// ProvisionUser creates a tenant user record. Duplicate creation for the same
// (tenant, email) is a no-op, so concurrent first logins are safe.
func (s *Store) ProvisionUser(ctx context.Context, tenantID, email, externalSubjectID, role string, idp claims.IdpType) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tenant_users (tenant_id, email, external_subject_id, role, idp_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (tenant_id, email) DO NOTHING
	`, tenantID, email, externalSubjectID, role, string(idp))
	if err != nil {
		return fmt.Errorf("failed to provision user: %w", err)
	}
	return nil
}
