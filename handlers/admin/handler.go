package admin

import (
	"context"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/services"
	"github.com/almursalaat/admin-api/services/storage"
	"github.com/almursalaat/admin-api/utils/validation"
)

// AdminHandler handles the admin console endpoints: account management,
// student applications, schedules and attendance.
type AdminHandler struct {
	db           *gorm.DB
	validator    *validation.Validator
	notifier     *services.Notifier
	files        storage.FileStore
	applications *services.ApplicationService
	attendance   *services.AttendanceService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	db *gorm.DB,
	validator *validation.Validator,
	notifier *services.Notifier,
	files storage.FileStore,
	applications *services.ApplicationService,
	attendance *services.AttendanceService,
) *AdminHandler {
	return &AdminHandler{
		db:           db,
		validator:    validator,
		notifier:     notifier,
		files:        files,
		applications: applications,
		attendance:   attendance,
	}
}

// removeStoredFile deletes a stored upload as a best-effort cleanup. A
// storage failure is logged, never surfaced: the row update is the primary
// write and an orphaned object must not fail the request.
func removeStoredFile(ctx context.Context, files storage.FileStore, fileURL string) {
	if fileURL == "" {
		return
	}
	if err := files.Delete(ctx, fileURL); err != nil {
		log.Printf("Error deleting stored file %s: %v", fileURL, err)
	}
}

// readUpload reads a multipart file fully into memory. Uploads are capped at
// 10MB by the size checks, well within what the server can buffer.
func readUpload(fh *multipart.FileHeader) ([]byte, string, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", err
	}

	return data, fh.Header.Get("Content-Type"), nil
}

// savePhoto validates and stores an optional photo upload, returning its URL.
func (h *AdminHandler) savePhoto(c *fiber.Ctx, field string, cat storage.Category) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		// Missing file is fine; photos are optional
		return "", nil
	}

	if err := storage.CheckPhoto(fh.Header.Get("Content-Type"), fh.Size); err != nil {
		return "", err
	}

	data, contentType, err := readUpload(fh)
	if err != nil {
		return "", err
	}

	return h.files.Save(c.Context(), cat, storage.NewObjectName(fh.Filename), data, contentType)
}

// saveCV validates and stores an optional CV upload, returning its URL.
func (h *AdminHandler) saveCV(c *fiber.Ctx, field string, cat storage.Category) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	if err := storage.CheckCV(fh.Header.Get("Content-Type"), fh.Size); err != nil {
		return "", err
	}

	data, contentType, err := readUpload(fh)
	if err != nil {
		return "", err
	}

	// The declared Content-Type is client-controlled; verify the bytes
	if err := storage.CheckCVContent(data); err != nil {
		return "", err
	}

	return h.files.Save(c.Context(), cat, storage.NewObjectName(fh.Filename), data, contentType)
}
