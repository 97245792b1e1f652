package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore keeps uploaded files on the server's own disk, served back by
// the /api/files handlers.
type LocalStore struct {
	baseDir   string
	urlPrefix string
}

// NewLocalStore creates the upload directories under baseDir.
func NewLocalStore(baseDir string) (*LocalStore, error) {
	for _, cat := range []Category{TeacherPhoto, TeacherCV, AdminPhoto, AdminCV} {
		if err := os.MkdirAll(filepath.Join(baseDir, string(cat)), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory for %s: %w", cat, err)
		}
	}
	return &LocalStore{
		baseDir:   baseDir,
		urlPrefix: "/api/files",
	}, nil
}

// BaseDir returns the root upload directory.
func (l *LocalStore) BaseDir() string {
	return l.baseDir
}

// FilePath resolves the on-disk path for a stored file.
func (l *LocalStore) FilePath(cat Category, name string) string {
	return filepath.Join(l.baseDir, string(cat), filepath.Base(name))
}

// Save writes the file and returns its serve URL.
func (l *LocalStore) Save(ctx context.Context, cat Category, name string, data []byte, contentType string) (string, error) {
	path := l.FilePath(cat, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return fmt.Sprintf("%s/%s/%s", l.urlPrefix, cat, filepath.Base(name)), nil
}

// Delete removes the file behind a stored URL. Missing files are fine.
func (l *LocalStore) Delete(ctx context.Context, fileURL string) error {
	key := keyFromURL(fileURL)
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(l.baseDir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
