package admin

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"

	"github.com/almursalaat/admin-api/services/storage"
)

// failingStore is a FileStore whose operations always fail.
type failingStore struct {
	deleted []string
}

func (s *failingStore) Save(ctx context.Context, cat storage.Category, name string, data []byte, contentType string) (string, error) {
	return "", errors.New("storage unavailable")
}

func (s *failingStore) Delete(ctx context.Context, fileURL string) error {
	s.deleted = append(s.deleted, fileURL)
	return errors.New("storage unavailable")
}

func TestRemoveStoredFileLogsDeleteFailure(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	store := &failingStore{}
	removeStoredFile(context.Background(), store, "/files/admin-photos/x.jpg")

	if len(store.deleted) != 1 || store.deleted[0] != "/files/admin-photos/x.jpg" {
		t.Fatalf("delete calls = %v, want the file URL once", store.deleted)
	}
	logged := buf.String()
	if !strings.Contains(logged, "/files/admin-photos/x.jpg") || !strings.Contains(logged, "storage unavailable") {
		t.Errorf("log output %q missing file URL or error", logged)
	}
}

func TestRemoveStoredFileSkipsEmptyURL(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	store := &failingStore{}
	removeStoredFile(context.Background(), store, "")

	if len(store.deleted) != 0 {
		t.Fatalf("delete calls = %v, want none for an empty URL", store.deleted)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected log output %q", buf.String())
	}
}
