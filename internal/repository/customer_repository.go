package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/animal-catalog/internal/domain"
)

const uniqueViolation = "23505"

// ErrDuplicateUsername is returned by Create when the username is taken in that store.
var ErrDuplicateUsername = errors.New("username already exists")

// CredentialStore looks up credential records by exact username.
// A missing username is reported as pgx.ErrNoRows.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (*domain.CredentialRecord, error)
}

// CustomerRepository defines persistence access for customers.
type CustomerRepository interface {
	CredentialStore
	Create(ctx context.Context, customer *domain.Customer) error
	Exists(ctx context.Context, username string) (bool, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository returns a Postgres-backed implementation.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (id, username, password_hash)
        VALUES ($1, $2, $3)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		customer.ID,
		customer.Username,
		customer.PasswordHash,
	).Scan(&customer.CreatedAt, &customer.UpdatedAt)
	return mapWriteError(err)
}

func (r *customerRepository) FindByUsername(ctx context.Context, username string) (*domain.CredentialRecord, error) {
	const query = `
        SELECT id, username, password_hash
        FROM customers WHERE username=$1`

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

func (r *customerRepository) Exists(ctx context.Context, username string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM customers WHERE username=$1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateUsername
	}
	return err
}
