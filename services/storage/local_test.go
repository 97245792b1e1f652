package storage

import (
	"context"
	"os"
	"testing"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	ctx := context.Background()
	url, err := store.Save(ctx, TeacherPhoto, "photo.png", []byte("fake image"), "image/png")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/api/files/teacher-photo/photo.png" {
		t.Errorf("Save URL = %q, want /api/files/teacher-photo/photo.png", url)
	}

	path := store.FilePath(TeacherPhoto, "photo.png")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "fake image" {
		t.Errorf("stored content = %q", data)
	}

	if err := store.Delete(ctx, url); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file still exists after Delete")
	}

	// Deleting again is not an error
	if err := store.Delete(ctx, url); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestLocalStoreCreatesCategoryDirs(t *testing.T) {
	dir := t.TempDir()
	if _, err := NewLocalStore(dir); err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	for _, cat := range []Category{TeacherPhoto, TeacherCV, AdminPhoto, AdminCV} {
		info, err := os.Stat(dir + "/" + string(cat))
		if err != nil || !info.IsDir() {
			t.Errorf("category dir %s missing", cat)
		}
	}
}

func TestFilePathStripsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	path := store.FilePath(TeacherCV, "../../etc/passwd")
	if got := store.FilePath(TeacherCV, "passwd"); got != path {
		t.Errorf("FilePath with traversal = %q, want %q", path, got)
	}
}
