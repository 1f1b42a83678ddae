package images

import (
	"context"

	"github.com/charafmezdari/portfolio/internal/server/models"
)

// Repository is the persistence contract for image rows.
//
// Update is a full-field replace: every column is overwritten with the
// supplied values (last write wins, no merge).
type Repository interface {
	ListByAlbum(ctx context.Context, albumID int64) ([]models.Image, error)
	GetByID(ctx context.Context, id int64) (*models.Image, error)
	Create(ctx context.Context, albumID int64, description, imageURL string, link *string) (*models.Image, error)
	Update(ctx context.Context, id int64, description, imageURL string, link *string) (*models.Image, error)
	Delete(ctx context.Context, id int64) error
}
