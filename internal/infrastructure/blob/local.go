package blob

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore keeps artifacts as files on local disk, sharded by the first
// two characters of the id.
type LocalStore struct {
	basePath string
}

// NewLocalStore creates the base directory if needed.
func NewLocalStore(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, err
	}
	return &LocalStore{basePath: basePath}, nil
}

// Put writes the artifact atomically: to a temp file first, then renamed
// into place.
func (s *LocalStore) Put(ctx context.Context, id string, body io.Reader) (int64, error) {
	tempFile, err := os.CreateTemp(s.basePath, "upload-*")
	if err != nil {
		return 0, err
	}
	defer os.Remove(tempFile.Name())

	written, err := io.Copy(tempFile, body)
	if err != nil {
		tempFile.Close()
		return 0, err
	}
	if err := tempFile.Close(); err != nil {
		return 0, err
	}

	targetPath := s.artifactPath(id)
	if err := os.MkdirAll(filepath.Dir(targetPath), 0755); err != nil {
		return 0, err
	}
	if err := os.Rename(tempFile.Name(), targetPath); err != nil {
		return 0, err
	}
	return written, nil
}

// Remove deletes the artifact. A missing file is not an error.
func (s *LocalStore) Remove(ctx context.Context, id string) error {
	if err := os.Remove(s.artifactPath(id)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStore) artifactPath(id string) string {
	shard := id
	if len(shard) > 2 {
		shard = shard[:2]
	}
	return filepath.Join(s.basePath, shard, id)
}
