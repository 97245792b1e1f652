package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Category names the four kinds of uploaded files. The category doubles as
// the directory (or object key prefix) the file lives under.
type Category string

const (
	TeacherPhoto Category = "teacher-photo"
	TeacherCV    Category = "teacher-cv"
	AdminPhoto   Category = "admin-photo"
	AdminCV      Category = "admin-cv"
)

const (
	// MaxPhotoSize is the photo upload cap (5MB)
	MaxPhotoSize = 5 * 1024 * 1024
	// MaxCVSize is the CV upload cap (10MB)
	MaxCVSize = 10 * 1024 * 1024
)

var (
	ErrNotAnImage  = errors.New("photo must be an image file")
	ErrNotAPDF     = errors.New("cv must be a PDF file")
	ErrPhotoTooBig = errors.New("photo must be 5MB or smaller")
	ErrCVTooBig    = errors.New("cv must be 10MB or smaller")
)

// FileStore persists uploaded files and hands back the URL stored on the
// entity row. Implementations: local disk and S3-compatible Spaces.
type FileStore interface {
	// Save stores data under the category and returns its public URL.
	Save(ctx context.Context, cat Category, name string, data []byte, contentType string) (string, error)
	// Delete removes the file behind a previously returned URL. Deleting a
	// missing file is not an error.
	Delete(ctx context.Context, fileURL string) error
}

// CheckPhoto validates a photo upload's declared type and size.
func CheckPhoto(contentType string, size int64) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if size > MaxPhotoSize {
		return ErrPhotoTooBig
	}
	return nil
}

// CheckCV validates a CV upload's declared type and size.
func CheckCV(contentType string, size int64) error {
	if contentType != "application/pdf" {
		return ErrNotAPDF
	}
	if size > MaxCVSize {
		return ErrCVTooBig
	}
	return nil
}

// NewObjectName generates a unique stored name, keeping the extension.
func NewObjectName(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("%s%s", uuid.New().String(), ext)
}

// keyFromURL recovers the "<category>/<name>" key from a stored URL, which
// is always its last two path segments regardless of backend.
func keyFromURL(fileURL string) string {
	parts := strings.Split(strings.TrimSuffix(fileURL, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
