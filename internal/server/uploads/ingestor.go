// Package uploads validates incoming file payloads and persists them into
// the blob store, producing the stable reference path stored on album and
// image rows.
package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/charafmezdari/portfolio/internal/common"
	"github.com/charafmezdari/portfolio/internal/server/blob"
)

// RefPrefix is the public path prefix under which ingested blobs are served.
const RefPrefix = "/uploads/"

// DefaultMaxSize is the upload ceiling applied when the config leaves it unset.
const DefaultMaxSize = 5 * 1024 * 1024

var defaultAllowedExts = []string{".jpg", ".jpeg", ".png", ".gif"}

// Ingestor validates and persists uploaded files.
type Ingestor struct {
	store   blob.Store
	maxSize int64
	allowed map[string]struct{}
}

// NewIngestor builds an Ingestor over the given store. maxSize <= 0 falls
// back to DefaultMaxSize; the extension allow-list is jpg/jpeg/png/gif.
func NewIngestor(store blob.Store, maxSize int64) *Ingestor {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	allowed := make(map[string]struct{}, len(defaultAllowedExts))
	for _, ext := range defaultAllowedExts {
		allowed[ext] = struct{}{}
	}
	return &Ingestor{store: store, maxSize: maxSize, allowed: allowed}
}

// Ingest validates the original filename's extension and the payload size,
// persists the bytes under a generated name and returns the reference path
// ("/uploads/<name>").
//
// The payload is read through a hard limit: at most maxSize+1 bytes are ever
// consumed, so an oversized upload fails before anything is written and
// without unbounded buffering.
func (i *Ingestor) Ingest(ctx context.Context, r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := i.allowed[ext]; !ok {
		return "", common.ErrUnsupportedFileType
	}

	buf, err := io.ReadAll(io.LimitReader(r, i.maxSize+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(buf)) > i.maxSize {
		return "", common.ErrFileTooLarge
	}

	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)

	if err := i.store.Save(ctx, name, bytes.NewReader(buf)); err != nil {
		return "", fmt.Errorf("save upload: %w", err)
	}

	return path.Join(RefPrefix, name), nil
}
