package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/animal-catalog/internal/domain"
)

// AdminRepository handles persistence for administrators.
type AdminRepository interface {
	CredentialStore
	Create(ctx context.Context, admin *domain.Admin) error
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository instantiates the repository.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	const query = `
        INSERT INTO admins (id, username, password_hash)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		admin.ID,
		admin.Username,
		admin.PasswordHash,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
	return mapWriteError(err)
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (*domain.CredentialRecord, error) {
	const query = `
        SELECT id, username, password_hash
        FROM admins WHERE username=$1`

	var record domain.CredentialRecord
	if err := r.pool.QueryRow(ctx, query, username).Scan(
		&record.ID,
		&record.Username,
		&record.PasswordHash,
	); err != nil {
		return nil, err
	}
	return &record, nil
}
