package admin

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/utils/response"
	"github.com/almursalaat/admin-api/utils/validation"
)

const classDateLayout = "2006-01-02"

// MarkAttendanceRequest records attendance for a student outside any
// recurring schedule slot.
type MarkAttendanceRequest struct {
	StudentID     uint   `json:"student_id" validate:"required"`
	TeacherID     uint   `json:"teacher_id"`
	ClassDate     string `json:"class_date" validate:"required"`
	Status        string `json:"status" validate:"required,max=50"`
	TeacherStatus string `json:"teacher_status" validate:"omitempty,max=50"`
	Notes         string `json:"notes" validate:"omitempty,max=1000"`
}

// SessionAttendanceRequest records attendance against a schedule slot.
type SessionAttendanceRequest struct {
	ScheduleID    uint   `json:"schedule_id" validate:"required"`
	ClassDate     string `json:"class_date" validate:"required"`
	Status        string `json:"status" validate:"required,max=50"`
	TeacherStatus string `json:"teacher_status" validate:"omitempty,max=50"`
	Notes         string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateAttendanceRequest edits a recorded attendance. Only the status pair
// and notes are mutable; student, teacher, schedule and date are the row's
// identity and never change after creation.
type UpdateAttendanceRequest struct {
	Status        *string `json:"status"`
	TeacherStatus *string `json:"teacher_status"`
	Notes         *string `json:"notes"`
}

func parseClassDate(s string) (time.Time, error) {
	return time.Parse(classDateLayout, s)
}

// MarkAttendance records attendance for a student on a date with no schedule
// link. One unscheduled record per student per date; a second attempt for
// the same pair is rejected.
func (h *AdminHandler) MarkAttendance(c *fiber.Ctx) error {
	var req MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	classDate, err := parseClassDate(req.ClassDate)
	if err != nil {
		return response.BadRequest(c, "class_date must be in YYYY-MM-DD format")
	}

	var student model.Application
	if err := h.db.First(&student, req.StudentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to load student")
	}

	teacherID := req.TeacherID
	if teacherID == 0 {
		if student.TeacherID == nil {
			return response.BadRequest(c, "Student has no assigned teacher; provide teacher_id")
		}
		teacherID = *student.TeacherID
	}
	var teacher model.Teacher
	if err := h.db.First(&teacher, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to load teacher")
	}

	var existing model.Attendance
	err = h.db.
		Where("student_id = ? AND class_date = ? AND schedule_id IS NULL", req.StudentID, classDate).
		First(&existing).Error
	if err == nil {
		return response.BadRequest(c, "Attendance for this student on this date has already been marked")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to check existing attendance")
	}

	attendance := model.Attendance{
		StudentID:     req.StudentID,
		TeacherID:     &teacher.ID,
		ClassDate:     classDate,
		Status:        validation.SanitizeString(req.Status),
		TeacherStatus: validation.SanitizeString(req.TeacherStatus),
		Notes:         validation.SanitizeString(req.Notes),
	}

	if err := h.db.Create(&attendance).Error; err != nil {
		return response.InternalServerError(c, "Failed to mark attendance")
	}

	return response.Created(c, attendance)
}

// ListAttendance returns attendance records for a teacher, optionally on a
// single date.
func (h *AdminHandler) ListAttendance(c *fiber.Ctx) error {
	query := h.db.
		Preload("Student").
		Preload("Student.Course").
		Order("class_date DESC")

	if teacherID := c.QueryInt("teacher_id"); teacherID > 0 {
		query = query.Where("teacher_id = ?", teacherID)
	}
	if date := c.Query("class_date"); date != "" {
		classDate, err := parseClassDate(date)
		if err != nil {
			return response.BadRequest(c, "class_date must be in YYYY-MM-DD format")
		}
		query = query.Where("class_date = ?", classDate)
	}

	var records []model.Attendance
	if err := query.Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to load attendance")
	}

	return response.Success(c, records)
}

// CreateSessionAttendance records attendance against a schedule slot. One
// record per schedule per date; marking the same session twice is rejected.
func (h *AdminHandler) CreateSessionAttendance(c *fiber.Ctx) error {
	var req SessionAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	classDate, err := parseClassDate(req.ClassDate)
	if err != nil {
		return response.BadRequest(c, "class_date must be in YYYY-MM-DD format")
	}

	var schedule model.Schedule
	if err := h.db.First(&schedule, req.ScheduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Schedule not found")
		}
		return response.InternalServerError(c, "Failed to load schedule")
	}

	var existing model.Attendance
	err = h.db.
		Where("schedule_id = ? AND class_date = ?", req.ScheduleID, classDate).
		First(&existing).Error
	if err == nil {
		return response.BadRequest(c, "Attendance for this session on this date has already been marked")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to check existing attendance")
	}

	attendance := model.Attendance{
		StudentID:     schedule.StudentID,
		TeacherID:     schedule.TeacherID,
		ScheduleID:    &schedule.ID,
		ClassDate:     classDate,
		Status:        validation.SanitizeString(req.Status),
		TeacherStatus: validation.SanitizeString(req.TeacherStatus),
		Notes:         validation.SanitizeString(req.Notes),
	}

	if err := h.db.Create(&attendance).Error; err != nil {
		return response.InternalServerError(c, "Failed to mark session attendance")
	}

	return response.Created(c, attendance)
}

// ListSessionAttendance returns schedule-linked attendance in a date range.
func (h *AdminHandler) ListSessionAttendance(c *fiber.Ctx) error {
	query := h.db.
		Preload("Student").
		Where("schedule_id IS NOT NULL").
		Order("class_date DESC")

	if teacherID := c.QueryInt("teacher_id"); teacherID > 0 {
		query = query.Where("teacher_id = ?", teacherID)
	}
	if start := c.Query("start_date"); start != "" {
		startDate, err := parseClassDate(start)
		if err != nil {
			return response.BadRequest(c, "start_date must be in YYYY-MM-DD format")
		}
		query = query.Where("class_date >= ?", startDate)
	}
	if end := c.Query("end_date"); end != "" {
		endDate, err := parseClassDate(end)
		if err != nil {
			return response.BadRequest(c, "end_date must be in YYYY-MM-DD format")
		}
		query = query.Where("class_date <= ?", endDate)
	}

	var records []model.Attendance
	if err := query.Find(&records).Error; err != nil {
		return response.InternalServerError(c, "Failed to load session attendance")
	}

	return response.Success(c, records)
}

// UpdateAttendance edits the status pair and notes of a recorded attendance.
func (h *AdminHandler) UpdateAttendance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid attendance ID")
	}

	var attendance model.Attendance
	if err := h.db.First(&attendance, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Attendance record not found")
		}
		return response.InternalServerError(c, "Failed to load attendance")
	}

	var req UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		updates["status"] = validation.SanitizeString(*req.Status)
	}
	if req.TeacherStatus != nil {
		updates["teacher_status"] = validation.SanitizeString(*req.TeacherStatus)
	}
	if req.Notes != nil {
		updates["notes"] = validation.SanitizeString(*req.Notes)
	}

	if len(updates) == 0 {
		return response.Success(c, attendance)
	}

	if err := h.db.Model(&attendance).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update attendance")
	}

	return response.Success(c, attendance)
}

// AttendanceCount returns a teacher's monthly attendance report: the same
// rows grouped by course under the teacher-facing status and per student
// under the student-facing status.
func (h *AdminHandler) AttendanceCount(c *fiber.Ctx) error {
	teacherID := c.QueryInt("teacher_id")
	if teacherID <= 0 {
		return response.BadRequest(c, "teacher_id is required")
	}

	now := time.Now().UTC()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return response.BadRequest(c, "month must be between 1 and 12")
	}

	var teacher model.Teacher
	if err := h.db.First(&teacher, teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to load teacher")
	}

	stats, err := h.attendance.MonthlyStats(c.Context(), uint(teacherID), year, month)
	if err != nil {
		return response.InternalServerError(c, "Failed to build attendance report")
	}

	return response.Success(c, stats)
}
