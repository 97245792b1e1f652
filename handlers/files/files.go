package files

import (
	"os"

	"github.com/gofiber/fiber/v2"

	"github.com/almursalaat/admin-api/services/storage"
	"github.com/almursalaat/admin-api/utils/response"
)

// FileHandler serves locally stored uploads. When the Spaces backend is
// active, file URLs point at the bucket or CDN and never reach this handler.
type FileHandler struct {
	local *storage.LocalStore
}

// NewFileHandler creates a new file handler
func NewFileHandler(local *storage.LocalStore) *FileHandler {
	return &FileHandler{local: local}
}

var validCategories = map[storage.Category]bool{
	storage.TeacherPhoto: true,
	storage.TeacherCV:    true,
	storage.AdminPhoto:   true,
	storage.AdminCV:      true,
}

// Debug reports the storage backend and the file count per category, for
// checking that uploads actually land where they should.
func (h *FileHandler) Debug(c *fiber.Ctx) error {
	if h.local == nil {
		return response.Success(c, fiber.Map{
			"backend": "spaces",
		})
	}

	counts := fiber.Map{}
	for cat := range validCategories {
		entries, err := os.ReadDir(h.local.FilePath(cat, "."))
		if err != nil {
			counts[string(cat)] = 0
			continue
		}
		counts[string(cat)] = len(entries)
	}

	return response.Success(c, fiber.Map{
		"backend":  "local",
		"base_dir": h.local.BaseDir(),
		"files":    counts,
	})
}

// Serve streams a stored file back to the client.
func (h *FileHandler) Serve(c *fiber.Ctx) error {
	if h.local == nil {
		return response.NotFound(c, "File not found")
	}

	cat := storage.Category(c.Params("category"))
	if !validCategories[cat] {
		return response.NotFound(c, "File not found")
	}

	name := c.Params("name")
	if name == "" {
		return response.NotFound(c, "File not found")
	}

	path := h.local.FilePath(cat, name)
	if _, err := os.Stat(path); err != nil {
		return response.NotFound(c, "File not found")
	}

	return c.SendFile(path)
}
