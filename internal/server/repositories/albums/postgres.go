// Package albums provides the PostgreSQL-backed repository for album rows.
package albums

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/dbx"
	"github.com/charafmezdari/portfolio/internal/server/models"
)

// PostgresRepository implements album storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Album, error) {
	query :=
		`SELECT id, name, COALESCE(image, ''), created_at FROM albums
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	albums := []models.Album{}
	for rows.Next() {
		var a models.Album
		if err := rows.Scan(&a.ID, &a.Name, &a.Image, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		albums = append(albums, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return albums, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Album, error) {
	query :=
		`SELECT id, name, COALESCE(image, ''), created_at FROM albums
		 WHERE id = $1
		 `

	album := &models.Album{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&album.ID, &album.Name, &album.Image, &album.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return album, nil
}

func (r *PostgresRepository) Create(ctx context.Context, name, image string) (*models.Album, error) {
	query :=
		`INSERT INTO albums (name, image)
         VALUES ($1, $2)
		 RETURNING id, name, COALESCE(image, ''), created_at
		 `

	album := &models.Album{}
	err := r.db.QueryRowContext(ctx, query, name, image).
		Scan(&album.ID, &album.Name, &album.Image, &album.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return album, nil
}

// Update replaces the name and, when image is non-nil, the cover reference.
// A nil image keeps the stored value in a single statement, so there is no
// read-modify-write window.
func (r *PostgresRepository) Update(ctx context.Context, id int64, name string, image *string) (*models.Album, error) {
	query :=
		`UPDATE albums SET name = $2, image = COALESCE($3, image)
		 WHERE id = $1
		 RETURNING id, name, COALESCE(image, ''), created_at
		 `

	album := &models.Album{}
	err := r.db.QueryRowContext(ctx, query, id, name, image).
		Scan(&album.ID, &album.Name, &album.Image, &album.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return album, nil
}

// Delete removes the album row. Dependent image rows are removed by the
// ON DELETE CASCADE constraint; blob files are left in place.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM albums WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}
