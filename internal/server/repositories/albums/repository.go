package albums

import (
	"context"

	"github.com/charafmezdari/portfolio/internal/server/models"
)

// Repository is the persistence contract for albums.
//
// Update takes image as a pointer: nil retains the stored reference, a
// non-nil value replaces it.
type Repository interface {
	List(ctx context.Context) ([]models.Album, error)
	GetByID(ctx context.Context, id int64) (*models.Album, error)
	Create(ctx context.Context, name, image string) (*models.Album, error)
	Update(ctx context.Context, id int64, name string, image *string) (*models.Album, error)
	Delete(ctx context.Context, id int64) error
}
