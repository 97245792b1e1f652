package teacher

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/services"
	"github.com/almursalaat/admin-api/utils/middleware"
	"github.com/almursalaat/admin-api/utils/response"
)

// TeacherHandler serves the teacher's own view: profile, assigned students
// and monthly attendance stats.
type TeacherHandler struct {
	db         *gorm.DB
	attendance *services.AttendanceService
}

// NewTeacherHandler creates a new teacher handler
func NewTeacherHandler(db *gorm.DB, attendance *services.AttendanceService) *TeacherHandler {
	return &TeacherHandler{db: db, attendance: attendance}
}

// Me returns the authenticated teacher's profile with assigned students and
// schedules.
func (h *TeacherHandler) Me(c *fiber.Ctx) error {
	caller, ok := middleware.GetTeacherUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	var teacher model.Teacher
	err := h.db.
		Preload("Students").
		Preload("Students.Course").
		Preload("Schedules").
		Preload("Schedules.Student").
		First(&teacher, caller.ID).Error
	if err != nil {
		return response.InternalServerError(c, "Failed to load profile")
	}

	return response.Success(c, teacher)
}

// MyAttendanceStats returns the caller's monthly attendance report. Year and
// month default to the current month.
func (h *TeacherHandler) MyAttendanceStats(c *fiber.Ctx) error {
	caller, ok := middleware.GetTeacherUser(c)
	if !ok {
		return response.Unauthorized(c, "Not authenticated")
	}

	now := time.Now().UTC()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return response.BadRequest(c, "month must be between 1 and 12")
	}

	stats, err := h.attendance.MonthlyStats(c.Context(), caller.ID, year, month)
	if err != nil {
		return response.InternalServerError(c, "Failed to build attendance report")
	}

	return response.Success(c, stats)
}
