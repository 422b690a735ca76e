package storage

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LocalStore keeps blobs on disk; the HTTP server exposes Dir under PublicURL.
type LocalStore struct {
	dir       string
	publicURL string
}

func NewLocalStore(dir, publicURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}
	return &LocalStore{
		dir:       dir,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Put(ctx context.Context, key string, body io.ReadSeeker, _ string) (string, error) {
	if err := validateKey(key); err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create directory")
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return "", errors.Wrap(err, "failed to create file")
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", errors.Wrap(err, "failed to write file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "failed to write file")
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", errors.Wrap(err, "failed to store file")
	}

	return s.publicURL + "/" + key, nil
}

// Delete is idempotent: a missing blob is not an error.
func (s *LocalStore) Delete(_ context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.dir, filepath.FromSlash(key)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "failed to delete file")
	}
	return nil
}
