// Package uploads is the filesystem-backed holding area for catalog files
// posted with a planning request. Stored names are made unique per request
// so concurrent uploads of the same filename cannot collide.
package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ErrTooLarge rejects uploads over the store's size cap.
var ErrTooLarge = fmt.Errorf("upload exceeds size limit")

// Store is the collaborator the handlers save and re-read uploads through.
type Store interface {
	Save(name string, r io.Reader) (string, error)
	Open(path string) (io.ReadCloser, error)
}

// DirStore keeps uploads in a single directory.
type DirStore struct {
	dir      string
	maxBytes int64
}

// NewDirStore creates the upload directory if needed. maxBytes <= 0 means
// no cap.
func NewDirStore(dir string, maxBytes int64) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &DirStore{dir: dir, maxBytes: maxBytes}, nil
}

// Save streams r into the store under a uuid-prefixed variant of name and
// returns the stored path. name is reduced to its base to keep callers from
// escaping the directory.
func (s *DirStore) Save(name string, r io.Reader) (string, error) {
	stored := filepath.Join(s.dir, uuid.NewString()+"_"+filepath.Base(name))
	f, err := os.Create(stored)
	if err != nil {
		return "", fmt.Errorf("creating upload: %w", err)
	}
	defer f.Close()

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}
	n, err := io.Copy(f, src)
	if err != nil {
		os.Remove(stored)
		return "", fmt.Errorf("writing upload: %w", err)
	}
	if s.maxBytes > 0 && n > s.maxBytes {
		os.Remove(stored)
		return "", ErrTooLarge
	}
	return stored, nil
}

// Open re-reads a previously saved upload.
func (s *DirStore) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

var _ Store = (*DirStore)(nil)
