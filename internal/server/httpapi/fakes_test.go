package httpapi

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/logging"
	"github.com/charafmezdari/portfolio/internal/server/models"
)

type fakeUsers struct {
	loginToken string
	loginErr   error

	authUser *models.User
	authErr  error

	lastToken string
}

func (f *fakeUsers) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeUsers) Authenticate(ctx context.Context, token string) (*models.User, error) {
	f.lastToken = token
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.authUser, nil
}

type fakeAlbums struct {
	listOut []models.Album
	listErr error

	getOut *models.Album
	getErr error

	createOut *models.Album
	createErr error

	updateOut *models.Album
	updateErr error

	deleteErr error

	createCalls     int
	lastCreateName  string
	lastCreateRef   string
	lastUpdateRef   *string
	lastUpdateName  string
}

func (f *fakeAlbums) List(ctx context.Context) ([]models.Album, error) {
	return f.listOut, f.listErr
}

func (f *fakeAlbums) Get(ctx context.Context, id int64) (*models.Album, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func (f *fakeAlbums) Create(ctx context.Context, name, imageRef string) (*models.Album, error) {
	f.createCalls++
	f.lastCreateName = name
	f.lastCreateRef = imageRef
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeAlbums) Update(ctx context.Context, id int64, name string, imageRef *string) (*models.Album, error) {
	f.lastUpdateName = name
	f.lastUpdateRef = imageRef
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeAlbums) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type fakeImages struct {
	listOut []models.Image
	listErr error

	createOut *models.Image
	createErr error

	updateOut *models.Image
	updateErr error

	deleteErr error

	lastListAlbumID int64
	lastCreateLink  *string
}

func (f *fakeImages) ListByAlbum(ctx context.Context, albumID int64) ([]models.Image, error) {
	f.lastListAlbumID = albumID
	return f.listOut, f.listErr
}

func (f *fakeImages) Create(ctx context.Context, albumID int64, description string, link *string, imageRef string) (*models.Image, error) {
	f.lastCreateLink = link
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeImages) Update(ctx context.Context, id int64, description, imageURL string, link *string) (*models.Image, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeImages) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

type fakeIngestor struct {
	ref string
	err error

	calls        int
	lastFilename string
}

func (f *fakeIngestor) Ingest(ctx context.Context, r io.Reader, filename string) (string, error) {
	f.calls++
	f.lastFilename = filename
	if f.err != nil {
		return "", f.err
	}
	_, _ = io.Copy(io.Discard, r)
	return f.ref, nil
}

type memBlobStore struct {
	blobs map[string][]byte
}

func (s *memBlobStore) Save(ctx context.Context, name string, r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.blobs[name] = b
	return nil
}

func (s *memBlobStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	b, ok := s.blobs[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

type testEnv struct {
	users    *fakeUsers
	albums   *fakeAlbums
	images   *fakeImages
	ingestor *fakeIngestor
	blobs    *memBlobStore
	srv      *HTTPServer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		users:    &fakeUsers{authUser: &models.User{ID: 1, Email: "admin@charaf.com"}},
		albums:   &fakeAlbums{},
		images:   &fakeImages{},
		ingestor: &fakeIngestor{ref: "/uploads/123_abc.jpg"},
		blobs:    &memBlobStore{blobs: map[string][]byte{}},
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	env.srv = NewHTTPServer(":0", logger, env.users, env.albums, env.images, env.ingestor, env.blobs, 5*1024*1024)

	return env
}

func (e *testEnv) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	e.srv.NewRouter().ServeHTTP(rec, req)
	return rec
}

// multipartBody builds a multipart form with the given text fields and,
// when fileField is non-empty, one file part.
func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}

	if fileField != "" {
		fw, err := w.CreateFormFile(fileField, filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	return buf, w.FormDataContentType()
}
