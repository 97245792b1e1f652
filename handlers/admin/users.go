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

// CreateAdminRequest is the multipart form for creating an admin account.
// Photo and CV arrive as separate file parts.
type CreateAdminRequest struct {
	Name        string `form:"name" validate:"required,max=100"`
	Email       string `form:"email" validate:"required,email"`
	PhoneNumber string `form:"phone_number" validate:"omitempty,max=30"`
	Gender      string `form:"gender" validate:"omitempty,max=20"`
}

// UpdateUserRequest carries a partial admin update. Pointer fields distinguish
// "not sent" from "set to empty".
type UpdateUserRequest struct {
	Name        *string `json:"name" form:"name"`
	PhoneNumber *string `json:"phone_number" form:"phone_number"`
	Gender      *string `json:"gender" form:"gender"`
}

// ListUsers returns every admin account.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	var users []model.User
	if err := h.db.Order("created_at ASC").Find(&users).Error; err != nil {
		return response.InternalServerError(c, "Failed to load users")
	}
	return response.Success(c, users)
}

// CreateAdmin creates a new admin account with a generated temporary
// password. The credentials email fires after the row is committed.
func (h *AdminHandler) CreateAdmin(c *fiber.Ctx) error {
	var req CreateAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	var existing model.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return response.BadRequest(c, "An admin with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to check existing users")
	}

	photoURL, err := h.savePhoto(c, "photo", storage.AdminPhoto)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}
	cvURL, err := h.saveCV(c, "cv", storage.AdminCV)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	tempPassword := authutil.GenerateTempPassword()
	hash, err := authutil.HashPassword(tempPassword)
	if err != nil {
		return response.InternalServerError(c, "Failed to hash password")
	}

	user := model.User{
		Name:         validation.SanitizeString(req.Name),
		Email:        validation.SanitizeString(req.Email),
		PasswordHash: hash,
		PhoneNumber:  validation.SanitizeString(req.PhoneNumber),
		Gender:       validation.SanitizeString(req.Gender),
		Role:         model.RoleAdmin,
		PhotoURL:     photoURL,
		CvURL:        cvURL,
	}

	if err := h.db.Create(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to create admin")
	}

	h.notifier.CredentialsIssued(user.Name, user.Email, tempPassword, "admin")

	return response.Created(c, user)
}

// UpdateUser applies a partial update to an admin account. Email, role and
// password are not editable here.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var user model.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	var req UpdateUserRequest
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

	if photoURL, err := h.savePhoto(c, "photo", storage.AdminPhoto); err != nil {
		return response.BadRequest(c, err.Error())
	} else if photoURL != "" {
		if user.PhotoURL != "" {
			removeStoredFile(c.Context(), h.files, user.PhotoURL)
		}
		updates["photo_url"] = photoURL
	}
	if cvURL, err := h.saveCV(c, "cv", storage.AdminCV); err != nil {
		return response.BadRequest(c, err.Error())
	} else if cvURL != "" {
		if user.CvURL != "" {
			removeStoredFile(c.Context(), h.files, user.CvURL)
		}
		updates["cv_url"] = cvURL
	}

	if len(updates) == 0 {
		return response.Success(c, user)
	}

	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		return response.InternalServerError(c, "Failed to update user")
	}

	return response.Success(c, user)
}

// DeleteUser removes an admin account. Deleting your own account is refused;
// the supreme admin cannot lock everyone out by accident.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var user model.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	if caller, ok := middleware.GetAdminUser(c); ok && caller.ID == user.ID {
		return response.BadRequest(c, "You cannot delete your own account")
	}

	if user.PhotoURL != "" {
		removeStoredFile(c.Context(), h.files, user.PhotoURL)
	}
	if user.CvURL != "" {
		removeStoredFile(c.Context(), h.files, user.CvURL)
	}

	if err := h.db.Delete(&user).Error; err != nil {
		return response.InternalServerError(c, "Failed to delete user")
	}

	return response.SuccessWithMessage(c, "User deleted successfully", nil)
}

// DeleteUserPhoto removes an admin's stored photo.
func (h *AdminHandler) DeleteUserPhoto(c *fiber.Ctx) error {
	return h.deleteUserFile(c, "photo_url")
}

// DeleteUserCV removes an admin's stored CV.
func (h *AdminHandler) DeleteUserCV(c *fiber.Ctx) error {
	return h.deleteUserFile(c, "cv_url")
}

func (h *AdminHandler) deleteUserFile(c *fiber.Ctx, column string) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var user model.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to load user")
	}

	url := user.PhotoURL
	if column == "cv_url" {
		url = user.CvURL
	}
	if url == "" {
		return response.NotFound(c, "No file to delete")
	}

	if err := h.files.Delete(c.Context(), url); err != nil {
		return response.InternalServerError(c, "Failed to delete file")
	}

	if err := h.db.Model(&user).Update(column, "").Error; err != nil {
		return response.InternalServerError(c, "Failed to update user")
	}

	return response.SuccessWithMessage(c, "File deleted successfully", nil)
}
