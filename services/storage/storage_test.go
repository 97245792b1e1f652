package storage

import (
	"strings"
	"testing"
)

func TestCheckPhoto(t *testing.T) {
	if err := CheckPhoto("image/png", 1024); err != nil {
		t.Errorf("CheckPhoto(png, 1KB) = %v, want nil", err)
	}
	if err := CheckPhoto("image/jpeg", MaxPhotoSize); err != nil {
		t.Errorf("CheckPhoto(jpeg, exactly max) = %v, want nil", err)
	}
	if err := CheckPhoto("application/pdf", 1024); err != ErrNotAnImage {
		t.Errorf("CheckPhoto(pdf) = %v, want ErrNotAnImage", err)
	}
	if err := CheckPhoto("image/png", MaxPhotoSize+1); err != ErrPhotoTooBig {
		t.Errorf("CheckPhoto(oversized) = %v, want ErrPhotoTooBig", err)
	}
}

func TestCheckCV(t *testing.T) {
	if err := CheckCV("application/pdf", 1024); err != nil {
		t.Errorf("CheckCV(pdf, 1KB) = %v, want nil", err)
	}
	if err := CheckCV("image/png", 1024); err != ErrNotAPDF {
		t.Errorf("CheckCV(png) = %v, want ErrNotAPDF", err)
	}
	if err := CheckCV("application/pdf", MaxCVSize+1); err != ErrCVTooBig {
		t.Errorf("CheckCV(oversized) = %v, want ErrCVTooBig", err)
	}
}

func TestNewObjectName(t *testing.T) {
	name := NewObjectName("resume.pdf")
	if !strings.HasSuffix(name, ".pdf") {
		t.Errorf("NewObjectName(resume.pdf) = %q, want .pdf suffix", name)
	}
	if name == "resume.pdf" {
		t.Error("object name should not keep the original basename")
	}

	if got := NewObjectName("noextension"); !strings.HasSuffix(got, ".bin") {
		t.Errorf("NewObjectName(noextension) = %q, want .bin suffix", got)
	}

	if NewObjectName("a.png") == NewObjectName("a.png") {
		t.Error("object names should be unique per call")
	}
}

func TestKeyFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/api/files/teacher-photo/abc.png", "teacher-photo/abc.png"},
		{"https://bucket.nyc3.digitaloceanspaces.com/teacher-cv/xyz.pdf", "teacher-cv/xyz.pdf"},
		{"https://cdn.example.com/admin-photo/p.jpg/", "admin-photo/p.jpg"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := keyFromURL(tt.url); got != tt.want {
			t.Errorf("keyFromURL(%q) = %q, want %q", tt.url, got, tt.want)
		}
	}
}
