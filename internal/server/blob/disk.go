package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charafmezdari/portfolio/internal/common"
)

// DiskStore keeps blobs as plain files under a root directory.
type DiskStore struct {
	root string
}

// NewDiskStore creates the root directory if needed and returns a store
// rooted there.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

// Save writes the blob to a new file. O_EXCL guarantees write-once semantics
// even if a name were ever reused.
func (s *DiskStore) Save(ctx context.Context, name string, r io.Reader) error {
	if name != filepath.Base(name) {
		return fmt.Errorf("invalid blob name %q", name)
	}

	f, err := os.OpenFile(filepath.Join(s.root, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o660)
	if err != nil {
		return fmt.Errorf("create blob: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(f.Name())
		return fmt.Errorf("write blob: %w", err)
	}

	return f.Close()
}

func (s *DiskStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if name != filepath.Base(name) {
		return nil, common.ErrorNotFound
	}

	f, err := os.Open(filepath.Join(s.root, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("open blob: %w", err)
	}

	return f, nil
}
