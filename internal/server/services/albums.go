package services

import (
	"context"
	"database/sql"
	"strings"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/server/models"
	"github.com/charafmezdari/portfolio/internal/server/repositories/repomanager"
)

// AlbumService implements album CRUD. An album can never be created without
// a cover image; deleting an album cascades to its image rows at the store
// level while blob files are left behind.
type AlbumService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAlbumService(db *sql.DB, m repomanager.RepositoryManager) *AlbumService {
	return &AlbumService{db: db, repomanager: m}
}

func (s *AlbumService) List(ctx context.Context) ([]models.Album, error) {
	return s.repomanager.Albums(s.db).List(ctx)
}

func (s *AlbumService) Get(ctx context.Context, id int64) (*models.Album, error) {
	return s.repomanager.Albums(s.db).GetByID(ctx, id)
}

// Create requires a non-empty trimmed name and a previously ingested image
// reference.
func (s *AlbumService) Create(ctx context.Context, name, imageRef string) (*models.Album, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrNameRequired
	}
	if imageRef == "" {
		return nil, common.ErrImageRequired
	}

	return s.repomanager.Albums(s.db).Create(ctx, name, imageRef)
}

// Update replaces the name and, when imageRef is non-nil, the cover
// reference. A nil imageRef keeps the stored reference; the replaced blob
// is not deleted.
func (s *AlbumService) Update(ctx context.Context, id int64, name string, imageRef *string) (*models.Album, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, common.ErrNameRequired
	}

	return s.repomanager.Albums(s.db).Update(ctx, id, name, imageRef)
}

func (s *AlbumService) Delete(ctx context.Context, id int64) error {
	return s.repomanager.Albums(s.db).Delete(ctx, id)
}
