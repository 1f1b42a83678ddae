// Package users provides the PostgreSQL-backed repository for administrator
// accounts.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/dbx"
	"github.com/charafmezdari/portfolio/internal/server/models"
)

// PostgresRepository implements account storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {

	query :=
		`INSERT INTO users (email, password)
         VALUES ($1, $2)
		 RETURNING id, email, password, created_at
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email, passwordHash).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query :=
		`SELECT id, email, password, created_at FROM users
		 WHERE email = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query :=
		`SELECT id, email, password, created_at FROM users
		 WHERE id = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
