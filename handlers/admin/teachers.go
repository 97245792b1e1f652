package admin

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/services/storage"
	authutil "github.com/almursalaat/admin-api/utils/auth"
	"github.com/almursalaat/admin-api/utils/middleware"
	"github.com/almursalaat/admin-api/utils/response"
	"github.com/almursalaat/admin-api/utils/validation"
)

// CreateTeacherRequest is the multipart form for creating a teacher account.
type CreateTeacherRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Email       string `form:"email" validate:"required,email"`
	PhoneNumber string `form:"phone_number" validate:"omitempty,max=30"`
	Gender      string `form:"gender" validate:"required,max=20"`
	Shift       string `form:"shift" validate:"omitempty,max=50"`
}

// UpdateTeacherRequest carries a partial teacher update.
type UpdateTeacherRequest struct {
	Name        *string `json:"name" form:"name"`
	PhoneNumber *string `json:"phone_number" form:"phone_number"`
	Gender      *string `json:"gender" form:"gender"`
	Shift       *string `json:"shift" form:"shift"`
}

// ListTeachers returns teacher accounts with their assigned students. A
// regular admin only sees teachers of their own gender; the supreme admin
// sees everyone.
func (h *AdminHandler) ListTeachers(c *fiber.Ctx) error {
	query := h.db.Preload("Students").Order("created_at ASC")

	role, _ := middleware.GetRole(c)
	if role == model.RoleAdmin {
		if caller, ok := middleware.GetAdminUser(c); ok && caller.Gender != "" {
			query = query.Where("gender = ?", caller.Gender)
		}
	}

	var teachers []model.Teacher
	if err := query.Find(&teachers).Error; err != nil {
		return response.InternalServerError(c, "Failed to load teachers")
	}

	return response.Success(c, teachers)
}

// CreateTeacher creates a teacher account with a generated temporary
// password and optional photo and CV uploads.
func (h *AdminHandler) CreateTeacher(c *fiber.Ctx) error {
	var req CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.Teacher
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.BadRequest(c, "A teacher with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to check existing teachers")
	}

	photoURL, err := h.savePhoto(c, "photo", storage.TeacherPhoto)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	cvURL, err := h.saveCV(c, "cv", storage.TeacherCV)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	tempPassword := authutil.GenerateTempPassword()
	hash, err := authutil.HashPassword(tempPassword)
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	teacher := model.Teacher{
		Name:         validation.SanitizeString(req.Name),
		Email:        validation.SanitizeString(req.Email),
		PasswordHash: hash,
		PhoneNumber:  validation.SanitizeString(req.PhoneNumber),
		Gender:       validation.SanitizeString(req.Gender),
		Shift:        validation.SanitizeString(req.Shift),
		PhotoURL:     photoURL,
		CvURL:        cvURL,
	}

	if err := h.db.Create(&teacher).Error; err != nil {
		return response.InternalServerError(c, "Failed to create teacher")
	}

	h.notifier.CredentialsIssued(teacher.Name, teacher.Email, tempPassword, "teacher")

	return response.Created(c, teacher)
}

// UpdateTeacher applies a partial update to a teacher account.
func (h *AdminHandler) UpdateTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid teacher ID")
	}

	var teacher model.Teacher
	if err := h.db.First(&teacher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to load teacher")
	}

	var req UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = validation.SanitizeString(*req.Name)
	}
	if req.PhoneNumber != nil {
		updates["phone_number"] = validation.SanitizeString(*req.PhoneNumber)
	}
	if req.Gender != nil {
		updates["gender"] = validation.SanitizeString(*req.Gender)
	}
	if req.Shift != nil {
		updates["shift"] = validation.SanitizeString(*req.Shift)
	}

	if photoURL, err := h.savePhoto(c, "photo", storage.TeacherPhoto); err != nil {
		return response.BadRequest(c, err.Error())
	} else if photoURL != "" {
		if teacher.PhotoURL != "" {
			removeStoredFile(c.Context(), h.files, teacher.PhotoURL)
		}
		updates["photo_url"] = photoURL
	}
	if cvURL, err := h.saveCV(c, "cv", storage.TeacherCV); err != nil {
		return response.BadRequest(c, err.Error())
	} else if cvURL != "" {
		if teacher.CvURL != "" {
			removeStoredFile(c.Context(), h.files, teacher.CvURL)
		}
		updates["cv_url"] = cvURL
	}

	if len(updates) == 0 {
		return response.Success(c, teacher)
	}

	if err := h.db.Model(&teacher).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update teacher")
	}

	return response.Success(c, teacher)
}

// DeleteTeacher removes a teacher account along with its stored files.
// Assigned students, their schedules and the attendance history all keep
// their rows; only the teacher reference is detached.
func (h *AdminHandler) DeleteTeacher(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid teacher ID")
	}

	var teacher model.Teacher
	if err := h.db.First(&teacher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to load teacher")
	}

	if teacher.PhotoURL != "" {
		removeStoredFile(c.Context(), h.files, teacher.PhotoURL)
	}
	if teacher.CvURL != "" {
		removeStoredFile(c.Context(), h.files, teacher.CvURL)
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Application{}).
			Where("teacher_id = ?", teacher.ID).
			Update("teacher_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Schedule{}).
			Where("teacher_id = ?", teacher.ID).
			Update("teacher_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.Attendance{}).
			Where("teacher_id = ?", teacher.ID).
			Update("teacher_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&teacher).Error
	})
	if err != nil {
		return response.InternalServerError(c, "Failed to delete teacher")
	}

	return response.SuccessWithMessage(c, "Teacher deleted successfully", nil)
}

// DeleteTeacherPhoto removes a teacher's stored photo.
func (h *AdminHandler) DeleteTeacherPhoto(c *fiber.Ctx) error {
	return h.deleteTeacherFile(c, "photo_url")
}

// DeleteTeacherCV removes a teacher's stored CV.
func (h *AdminHandler) DeleteTeacherCV(c *fiber.Ctx) error {
	return h.deleteTeacherFile(c, "cv_url")
}

func (h *AdminHandler) deleteTeacherFile(c *fiber.Ctx, column string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid teacher ID")
	}

	var teacher model.Teacher
	if err := h.db.First(&teacher, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Teacher not found")
		}
		return response.InternalServerError(c, "Failed to load teacher")
	}

	url := teacher.PhotoURL
	if column == "cv_url" {
		url = teacher.CvURL
	}
	if url == "" {
		return response.NotFound(c, "No file to delete")
	}

	if err := h.files.Delete(c.Context(), url); err != nil {
		return response.InternalServerError(c, "Failed to delete file")
	}

	if err := h.db.Model(&teacher).Update(column, "").Error; err != nil {
		return response.InternalServerError(c, "Failed to update teacher")
	}

	return response.SuccessWithMessage(c, "File deleted successfully", nil)
}
