package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almursalaat/admin-api/database"
)

// HandleCheckHealth answers the root health probe.
func HandleCheckHealth(c *fiber.Ctx, store *database.GORMStore) error {
	if err := store.HealthCheck(); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "error",
			"message": "Database unreachable",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Welcome to the Al-Mursalaat API!",
	})
}
