// Package server initializes and runs the portfolio backend: it opens the
// database pool, applies migrations, seeds the bootstrap admin account and
// starts the HTTP server with graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/charafmezdari/portfolio/internal/logging"
	"github.com/charafmezdari/portfolio/internal/server/blob"
	"github.com/charafmezdari/portfolio/internal/server/config"
	"github.com/charafmezdari/portfolio/internal/server/httpapi"
	"github.com/charafmezdari/portfolio/internal/server/repositories/repomanager"
	"github.com/charafmezdari/portfolio/internal/server/services"
	"github.com/charafmezdari/portfolio/internal/server/uploads"
)

// maxOpenConns bounds the connection pool; requests beyond the ceiling wait.
const maxOpenConns = 10

type App struct {
	config       *config.Config
	logger       logging.Logger
	db           *sql.DB
	userService  *services.UserService
	albumService *services.AlbumService
	imageService *services.ImageService
	ingestor     *uploads.Ingestor
	blobStore    blob.Store
}

// NewApp wires every component. Failure to reach the database is fatal:
// without durable storage there is nothing useful to serve.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	db.SetMaxOpenConns(maxOpenConns)

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()

	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	as := services.NewAlbumService(db, rm)
	is := services.NewImageService(db, rm)

	if err := us.EnsureAdmin(ctx, c.AdminEmail, c.AdminPassword); err != nil {
		return nil, fmt.Errorf("admin bootstrap error: %w", err)
	}

	store, err := newBlobStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("blob store error: %w", err)
	}

	return &App{
		config:       c,
		logger:       logger,
		db:           db,
		userService:  us,
		albumService: as,
		imageService: is,
		ingestor:     uploads.NewIngestor(store, c.MaxUploadSize),
		blobStore:    store,
	}, nil
}

// newBlobStore selects the S3-compatible backend when a bucket is
// configured, the local disk otherwise.
func newBlobStore(ctx context.Context, c *config.Config) (blob.Store, error) {
	if c.S3Bucket != "" {
		return blob.NewS3Store(ctx, blob.S3Options{
			RootUser:     c.S3RootUser,
			RootPassword: c.S3RootPassword,
			Bucket:       c.S3Bucket,
			Region:       c.S3Region,
			BaseEndpoint: c.S3BaseEndpoint,
		})
	}
	return blob.NewDiskStore(c.UploadDir)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger,
		app.userService, app.albumService, app.imageService,
		app.ingestor, app.blobStore, app.config.MaxUploadSize)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "closing db pool", "error", err)
	}
}
