package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/dbx"
	"github.com/charafmezdari/portfolio/internal/server/models"
	"github.com/charafmezdari/portfolio/internal/server/repositories/repomanager"
)

// ImageService implements image CRUD scoped to a parent album.
type ImageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewImageService(db *sql.DB, m repomanager.RepositoryManager) *ImageService {
	return &ImageService{db: db, repomanager: m}
}

func (s *ImageService) ListByAlbum(ctx context.Context, albumID int64) ([]models.Image, error) {
	return s.repomanager.Images(s.db).ListByAlbum(ctx, albumID)
}

// Create inserts an image bound to an existing album. The existence check
// and the insert run in one transaction so the parent cannot vanish between
// the two statements.
func (s *ImageService) Create(ctx context.Context, albumID int64, description string, link *string, imageRef string) (*models.Image, error) {

	if imageRef == "" {
		return nil, common.ErrImageRequired
	}

	var img *models.Image

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {

		if _, err := s.repomanager.Albums(tx).GetByID(ctx, albumID); err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrAlbumNotFound
			}
			return fmt.Errorf("error checking album: %w", err)
		}

		created, err := s.repomanager.Images(tx).Create(ctx, albumID, description, imageRef, link)
		if err != nil {
			return fmt.Errorf("error creating image: %w", err)
		}

		img = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	return img, nil
}

// Update is a full-field replace: callers resupply every field and omitted
// values clear the stored ones (last write wins).
func (s *ImageService) Update(ctx context.Context, id int64, description, imageURL string, link *string) (*models.Image, error) {
	return s.repomanager.Images(s.db).Update(ctx, id, description, imageURL, link)
}

func (s *ImageService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Images(s.db).Delete(ctx, id)
}
