package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/charafmezdari/portfolio/internal/dbx"
	"github.com/charafmezdari/portfolio/internal/server/models"
	albumsrepo "github.com/charafmezdari/portfolio/internal/server/repositories/albums"
	imagesrepo "github.com/charafmezdari/portfolio/internal/server/repositories/images"
	usersrepo "github.com/charafmezdari/portfolio/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return db, mock
}

type fakeUsersRepo struct {
	createOut *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error

	created []string
}

func (f *fakeUsersRepo) Create(ctx context.Context, email, passwordHash string) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, passwordHash)
	return f.createOut, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

type fakeAlbumsRepo struct {
	listOut []models.Album
	listErr error

	getOut *models.Album
	getErr error

	createOut *models.Album
	createErr error

	updateOut *models.Album
	updateErr error

	deleteErr error

	lastCreateName  string
	lastCreateImage string
	lastUpdateImage *string
}

func (f *fakeAlbumsRepo) List(ctx context.Context) ([]models.Album, error) {
	return f.listOut, f.listErr
}

func (f *fakeAlbumsRepo) GetByID(ctx context.Context, id int64) (*models.Album, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAlbumsRepo) Create(ctx context.Context, name, image string) (*models.Album, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.lastCreateName = name
	f.lastCreateImage = image
	return f.createOut, nil
}

func (f *fakeAlbumsRepo) Update(ctx context.Context, id int64, name string, image *string) (*models.Album, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.lastUpdateImage = image
	return f.updateOut, nil
}

func (f *fakeAlbumsRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type fakeImagesRepo struct {
	listOut []models.Image
	listErr error

	getOut *models.Image
	getErr error

	createOut *models.Image
	createErr error

	updateOut *models.Image
	updateErr error

	deleteErr error
}

func (f *fakeImagesRepo) ListByAlbum(ctx context.Context, albumID int64) ([]models.Image, error) {
	return f.listOut, f.listErr
}

func (f *fakeImagesRepo) GetByID(ctx context.Context, id int64) (*models.Image, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeImagesRepo) Create(ctx context.Context, albumID int64, description, imageURL string, link *string) (*models.Image, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeImagesRepo) Update(ctx context.Context, id int64, description, imageURL string, link *string) (*models.Image, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeImagesRepo) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	a *fakeAlbumsRepo
	i *fakeImagesRepo
}

func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository    { return m.u }
func (m *fakeRepoManager) Albums(db dbx.DBTX) albumsrepo.Repository  { return m.a }
func (m *fakeRepoManager) Images(db dbx.DBTX) imagesrepo.Repository  { return m.i }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
