// Package blob abstracts the durable file storage for uploaded images.
// Files are keyed by their generated filename; writers never overwrite an
// existing blob because names are unique per ingest.
package blob

import (
	"context"
	"io"
)

// Store is the blob storage contract shared by the disk and S3 backends.
type Store interface {
	// Save persists the content of r under name.
	Save(ctx context.Context, name string, r io.Reader) error

	// Open returns a reader for the blob stored under name, or
	// common.ErrorNotFound if no such blob exists.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
