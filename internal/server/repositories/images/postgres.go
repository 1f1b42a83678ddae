// Package images provides the PostgreSQL-backed repository for image rows.
package images

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/dbx"
	"github.com/charafmezdari/portfolio/internal/server/models"
)

// PostgresRepository implements image storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByAlbum(ctx context.Context, albumID int64) ([]models.Image, error) {
	query :=
		`SELECT id, COALESCE(description, ''), image_url, link, album_id, created_at FROM images
		 WHERE album_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, albumID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	images := []models.Image{}
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(&img.ID, &img.Description, &img.ImageURL, &img.Link, &img.AlbumID, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		images = append(images, img)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return images, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	query :=
		`SELECT id, COALESCE(description, ''), image_url, link, album_id, created_at FROM images
		 WHERE id = $1
		 `

	img := &models.Image{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&img.ID, &img.Description, &img.ImageURL, &img.Link, &img.AlbumID, &img.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return img, nil
}

func (r *PostgresRepository) Create(ctx context.Context, albumID int64, description, imageURL string, link *string) (*models.Image, error) {
	query :=
		`INSERT INTO images (description, image_url, link, album_id)
         VALUES ($1, $2, $3, $4)
		 RETURNING id, COALESCE(description, ''), image_url, link, album_id, created_at
		 `

	img := &models.Image{}
	err := r.db.QueryRowContext(ctx, query, description, imageURL, link, albumID).
		Scan(&img.ID, &img.Description, &img.ImageURL, &img.Link, &img.AlbumID, &img.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return img, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, description, imageURL string, link *string) (*models.Image, error) {
	query :=
		`UPDATE images SET description = $2, image_url = $3, link = $4
		 WHERE id = $1
		 RETURNING id, COALESCE(description, ''), image_url, link, album_id, created_at
		 `

	img := &models.Image{}
	err := r.db.QueryRowContext(ctx, query, id, description, imageURL, link).
		Scan(&img.ID, &img.Description, &img.ImageURL, &img.Link, &img.AlbumID, &img.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return img, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM images WHERE id = $1`

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
