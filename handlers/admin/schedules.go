package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/utils/response"
	"github.com/almursalaat/admin-api/utils/validation"
)

// CreateScheduleRequest creates a recurring weekly class slot. Times are
// clock strings ("HH:MM" or "HH:MM:SS"); the server never interprets them
// beyond storage and display.
type CreateScheduleRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	TeacherID uint   `json:"teacher_id" validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,max=20"`
	StartTime string `json:"start_time" validate:"required,max=20"`
	EndTime   string `json:"end_time" validate:"required,max=20"`
	ZoomLink  string `json:"zoom_link" validate:"omitempty,max=500"`
}

// UpdateScheduleRequest carries a partial schedule update.
type UpdateScheduleRequest struct {
	DayOfWeek *string `json:"day_of_week"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	ZoomLink  *string `json:"zoom_link"`
	TeacherID *uint   `json:"teacher_id"`
}

// ListSchedules returns schedules, optionally filtered by teacher or student.
func (h *AdminHandler) ListSchedules(c *fiber.Ctx) error {
	query := h.db.
		Preload("Student").
		Order("day_of_week ASC, start_time ASC")

	if teacherID := c.QueryInt("teacher_id"); teacherID > 0 {
		query = query.Where("teacher_id = ?", teacherID)
	}
	if studentID := c.QueryInt("student_id"); studentID > 0 {
		query = query.Where("student_id = ?", studentID)
	}

	var schedules []model.Schedule
	if err := query.Find(&schedules).Error; err != nil {
		return response.InternalServerError(c, "Failed to load schedules")
	}

	return response.Success(c, schedules)
}

// CreateSchedule creates a weekly class slot. Student and teacher must both
// exist; a dangling reference is a 404, not a 500 from the database.
func (h *AdminHandler) CreateSchedule(c *fiber.Ctx) error {
	var req CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var student model.Application
	if err := h.db.First(&student, req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to load student")
	}

	var teacher model.Teacher
	if err := h.db.First(&teacher, req.TeacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to load teacher")
	}

	schedule := model.Schedule{
		StudentID: req.StudentID,
		TeacherID: &teacher.ID,
		DayOfWeek: validation.SanitizeString(req.DayOfWeek),
		StartTime: validation.SanitizeString(req.StartTime),
		EndTime:   validation.SanitizeString(req.EndTime),
		ZoomLink:  validation.SanitizeString(req.ZoomLink),
	}

	if err := h.db.Create(&schedule).Error; err != nil {
		return response.InternalServerError(c, "Failed to create schedule")
	}

	return response.Created(c, schedule)
}

// UpdateSchedule applies a partial update to a schedule.
func (h *AdminHandler) UpdateSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid schedule ID")
	}

	var schedule model.Schedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Schedule not found")
		}
		return response.InternalServerError(c, "Failed to load schedule")
	}

	var req UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.DayOfWeek != nil {
		updates["day_of_week"] = validation.SanitizeString(*req.DayOfWeek)
	}
	if req.StartTime != nil {
		updates["start_time"] = validation.SanitizeString(*req.StartTime)
	}
	if req.EndTime != nil {
		updates["end_time"] = validation.SanitizeString(*req.EndTime)
	}
	if req.ZoomLink != nil {
		updates["zoom_link"] = validation.SanitizeString(*req.ZoomLink)
	}
	if req.TeacherID != nil {
		var teacher model.Teacher
		if err := h.db.First(&teacher, *req.TeacherID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NotFound(c, "Teacher not found")
			}
			return response.InternalServerError(c, "Failed to load teacher")
		}
		updates["teacher_id"] = teacher.ID
	}

	if len(updates) == 0 {
		return response.Success(c, schedule)
	}

	if err := h.db.Model(&schedule).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update schedule")
	}

	return response.Success(c, schedule)
}

// DeleteSchedule removes a schedule. Attendance rows that reference it keep
// their history; the schedule link is detached.
func (h *AdminHandler) DeleteSchedule(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid schedule ID")
	}

	var schedule model.Schedule
	if err := h.db.First(&schedule, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Schedule not found")
		}
		return response.InternalServerError(c, "Failed to load schedule")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Attendance{}).
			Where("schedule_id = ?", schedule.ID).
			Update("schedule_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&schedule).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete schedule")
	}

	return response.SuccessWithMessage(c, "Schedule deleted successfully", nil)
}
