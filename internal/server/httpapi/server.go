// Package httpapi exposes the portfolio REST surface: public album/image
// reads, token-gated mutations, login and static serving of uploaded files.
package httpapi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charafmezdari/portfolio/internal/logging"
	"github.com/charafmezdari/portfolio/internal/server/blob"
	"github.com/charafmezdari/portfolio/internal/server/models"
)

// UserProvider is the authentication surface the handlers need.
type UserProvider interface {
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

// AlbumProvider is the album domain surface the handlers need.
type AlbumProvider interface {
	List(ctx context.Context) ([]models.Album, error)
	Get(ctx context.Context, id int64) (*models.Album, error)
	Create(ctx context.Context, name, imageRef string) (*models.Album, error)
	Update(ctx context.Context, id int64, name string, imageRef *string) (*models.Album, error)
	Delete(ctx context.Context, id int64) error
}

// ImageProvider is the image domain surface the handlers need.
type ImageProvider interface {
	ListByAlbum(ctx context.Context, albumID int64) ([]models.Image, error)
	Create(ctx context.Context, albumID int64, description string, link *string, imageRef string) (*models.Image, error)
	Update(ctx context.Context, id int64, description, imageURL string, link *string) (*models.Image, error)
	Delete(ctx context.Context, id int64) error
}

// Ingestor persists an uploaded payload and returns its reference path.
type Ingestor interface {
	Ingest(ctx context.Context, r io.Reader, filename string) (string, error)
}

// HTTPServer wires the domain services to the REST routes.
type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     UserProvider
	albums    AlbumProvider
	images    ImageProvider
	ingestor  Ingestor
	blobs     blob.Store
	maxUpload int64
}

func NewHTTPServer(a string, l logging.Logger, us UserProvider, as AlbumProvider, is ImageProvider, ing Ingestor, blobs blob.Store, maxUpload int64) *HTTPServer {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		albums:    as,
		images:    is,
		ingestor:  ing,
		blobs:     blobs,
		maxUpload: maxUpload,
	}
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.NewRouter(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
