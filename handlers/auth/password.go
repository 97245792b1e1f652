package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	authutil "github.com/almursalaat/admin-api/utils/auth"
	"github.com/almursalaat/admin-api/utils/middleware"
	"github.com/almursalaat/admin-api/utils/response"
)

// ForgotPasswordRequest represents a forgot-password request
type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" form:"new_password" validate:"required,min=8"`
}

// ForgotPassword replaces the account's password with a generated temporary
// one and mails it out. The database write happens before the response; the
// email itself is fire-and-forget. An unknown email is a 404 so the frontend
// can tell the user to check their spelling.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	tempPassword := authutil.GenerateTempPassword()
	hash, err := authutil.HashPassword(tempPassword)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate temporary password")
	}

	var user model.User
	err = h.db.Where("email = ?", req.Email).First(&user).Error
	if err == nil {
		if err := h.db.Model(&user).Update("password_hash", hash).Error; err != nil {
			return response.InternalServerError(c, "Failed to reset password")
		}
		h.notifier.PasswordReset(user.Name, user.Email, tempPassword)
		return response.SuccessWithMessage(c, "A temporary password has been sent to your email", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return response.InternalServerError(c, "Failed to load account")
	}

	var teacher model.Teacher
	err = h.db.Where("email = ?", req.Email).First(&teacher).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "No account found with this email address")
		}
		return response.InternalServerError(c, "Failed to load account")
	}

	if err := h.db.Model(&teacher).Update("password_hash", hash).Error; err != nil {
		return response.InternalServerError(c, "Failed to reset password")
	}
	h.notifier.PasswordReset(teacher.Name, teacher.Email, tempPassword)

	return response.SuccessWithMessage(c, "A temporary password has been sent to your email", nil)
}

// ChangePassword lets any authenticated account replace its own password
// after re-proving the current one.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.validator.ValidateStruct(req); err != nil {
		return response.ValidationError(c, err)
	}

	hash, err := authutil.HashPassword(req.NewPassword)
	if err != nil {
		if errors.Is(err, authutil.ErrPasswordTooShort) {
			return response.ValidationError(c, err)
		}
		return response.InternalServerError(c, "Failed to hash password")
	}

	if user, ok := middleware.GetAdminUser(c); ok {
		if err := authutil.VerifyPassword(user.PasswordHash, req.CurrentPassword); err != nil {
			return response.Unauthorized(c, "Current password is incorrect")
		}
		if err := h.db.Model(user).Update("password_hash", hash).Error; err != nil {
			return response.InternalServerError(c, "Failed to change password")
		}
		return response.SuccessWithMessage(c, "Password changed successfully", nil)
	}

	if teacher, ok := middleware.GetTeacherUser(c); ok {
		if err := authutil.VerifyPassword(teacher.PasswordHash, req.CurrentPassword); err != nil {
			return response.Unauthorized(c, "Current password is incorrect")
		}
		if err := h.db.Model(teacher).Update("password_hash", hash).Error; err != nil {
			return response.InternalServerError(c, "Failed to change password")
		}
		return response.SuccessWithMessage(c, "Password changed successfully", nil)
	}

	return response.Unauthorized(c, "Not authenticated")
}
