package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/utils/response"
)

// DashboardStats returns the headline counts for the admin dashboard.
func (h *AdminHandler) DashboardStats(c *fiber.Ctx) error {
	var totalStudents, totalTeachers, pending, approved, totalSchedules int64

	if err := h.db.Model(&model.Application{}).Count(&totalStudents).Error; err != nil {
		return response.InternalServerError(c, "Failed to count students")
	}
	if err := h.db.Model(&model.Teacher{}).Count(&totalTeachers).Error; err != nil {
		return response.InternalServerError(c, "Failed to count teachers")
	}
	if err := h.db.Model(&model.Application{}).Where("status = ?", model.StatusPending).Count(&pending).Error; err != nil {
		return response.InternalServerError(c, "Failed to count pending applications")
	}
	if err := h.db.Model(&model.Application{}).Where("status = ?", model.StatusApproved).Count(&approved).Error; err != nil {
		return response.InternalServerError(c, "Failed to count approved students")
	}
	if err := h.db.Model(&model.Schedule{}).Count(&totalSchedules).Error; err != nil {
		return response.InternalServerError(c, "Failed to count schedules")
	}

	return response.Success(c, fiber.Map{
		"total_students":       totalStudents,
		"total_teachers":       totalTeachers,
		"pending_applications": pending,
		"approved_students":    approved,
		"total_schedules":      totalSchedules,
	})
}
