package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/services"
	"github.com/almursalaat/admin-api/utils/response"
	"github.com/almursalaat/admin-api/utils/validation"
)

// UpdateStudentRequest carries a partial student update. Assignment fields
// (teacher, status, shift) change only through AssignTeacher.
type UpdateStudentRequest struct {
	FirstName          *string `json:"first_name"`
	LastName           *string `json:"last_name"`
	PhoneNumber        *string `json:"phone_number"`
	WhatsappNumber     *string `json:"whatsapp_number"`
	Country            *string `json:"country"`
	Gender             *string `json:"gender"`
	Age                *int    `json:"age"`
	ParentName         *string `json:"parent_name"`
	Relationship       *string `json:"relationship"`
	PreferredCourse    *string `json:"preferred_course"`
	PreviousExperience *string `json:"previous_experience"`
	LearningGoals      *string `json:"learning_goals"`
}

// AssignTeacherRequest links a student to a teacher.
type AssignTeacherRequest struct {
	TeacherID uint   `json:"teacher_id" validate:"required"`
	Shift     string `json:"shift" validate:"omitempty,max=50"`
}

// ListStudents returns every student application with its matched course.
// Optional status query filters to Pending or Approved.
func (h *AdminHandler) ListStudents(c *fiber.Ctx) error {
	query := h.db.
		Preload("Course").
		Order("created_at DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var students []model.Application
	if err := query.Find(&students).Error; err != nil {
		return response.InternalServerError(c, "Failed to load students")
	}

	return response.Success(c, students)
}

// GetStudent returns one student application.
func (h *AdminHandler) GetStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid student ID")
	}

	var student model.Application
	err = h.db.
		Preload("Course").
		First(&student, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to load student")
	}

	return response.Success(c, student)
}

// AddStudent lets an admin register a student directly, bypassing the public
// form and its rate limit. The same service path runs underneath, so the
// duplicate-email check and course matching behave identically.
func (h *AdminHandler) AddStudent(c *fiber.Ctx) error {
	var input services.ApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(input); err != nil {
		return response.ValidationError(c, err)
	}

	app, err := h.applications.Create(c.Context(), input)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to add student")
	}

	return response.Created(c, app)
}

// UpdateStudent applies a partial update to a student application.
func (h *AdminHandler) UpdateStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid student ID")
	}

	var student model.Application
	if err := h.db.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to load student")
	}

	var req UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = validation.SanitizeString(*v)
		}
	}
	setString("first_name", req.FirstName)
	setString("last_name", req.LastName)
	setString("phone_number", req.PhoneNumber)
	setString("whatsapp_number", req.WhatsappNumber)
	setString("country", req.Country)
	setString("gender", req.Gender)
	setString("parent_name", req.ParentName)
	setString("relationship", req.Relationship)
	setString("previous_experience", req.PreviousExperience)
	setString("learning_goals", req.LearningGoals)
	if req.Age != nil {
		if *req.Age <= 0 {
			return response.BadRequest(c, "Age must be greater than zero")
		}
		updates["age"] = *req.Age
	}
	if req.PreferredCourse != nil {
		updates["preferred_course"] = validation.SanitizeString(*req.PreferredCourse)
		// Re-match the catalog link when the preference changes
		course, err := h.applications.MatchCourse(c.Context(), *req.PreferredCourse)
		if err != nil {
			return response.InternalServerError(c, "Failed to match course")
		}
		if course != nil {
			updates["course_id"] = course.ID
		} else {
			updates["course_id"] = nil
		}
	}

	if len(updates) == 0 {
		return response.Success(c, student)
	}

	if err := h.db.Model(&student).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update student")
	}

	return response.Success(c, student)
}

// AssignTeacher assigns a teacher to a student and flips the application to
// Approved. Both sides must exist; assignment is idempotent and reassignment
// simply points at the new teacher.
func (h *AdminHandler) AssignTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid student ID")
	}

	var req AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var student model.Application
	if err := h.db.First(&student, id).Error; err != nil {
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

	updates := map[string]interface{}{
		"teacher_id": teacher.ID,
		"status":     model.StatusApproved,
	}
	if req.Shift != "" {
		updates["shift"] = validation.SanitizeString(req.Shift)
	}

	if err := h.db.Model(&student).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to assign teacher")
	}

	return response.SuccessWithMessage(c, "Teacher assigned successfully", student)
}

// DeleteStudent removes a student application. Schedules and attendance
// cascade with it.
func (h *AdminHandler) DeleteStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid student ID")
	}

	var student model.Application
	if err := h.db.First(&student, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Student not found")
		}
		return response.InternalServerError(c, "Failed to load student")
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", student.ID).Delete(&model.Attendance{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", student.ID).Delete(&model.Schedule{}).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete student")
	}

	return response.SuccessWithMessage(c, "Student deleted successfully", nil)
}
