package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	authutil "github.com/almursalaat/admin-api/utils/auth"
	"github.com/almursalaat/admin-api/utils/response"
)

// LoginRequest carries the login form. The field is called username for
// compatibility with the frontend's form, but it holds the account email.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
	Name        string `json:"name"`
}

// Login authenticates an admin or teacher and sets the session cookie. The
// users table is checked first, then teachers; a credential failure in either
// is the same 401 so the response does not reveal which table holds the email.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.Username == "" || req.Password == "" {
		return response.BadRequest(c, "Username and password are required")
	}

	name, role, passwordHash, err := h.findAccount(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.Unauthorized(c, "Incorrect username or password")
		}
		return response.InternalServerError(c, "Failed to load account")
	}

	if err := authutil.VerifyPassword(passwordHash, req.Password); err != nil {
		return response.Unauthorized(c, "Incorrect username or password")
	}

	token, err := h.jwtManager.GenerateToken(req.Username, role)
	if err != nil {
		return response.InternalServerError(c, "Failed to generate session token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authutil.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.jwtManager.Expiry()),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})

	return response.Success(c, LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        role,
		Name:        name,
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authutil.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
		Path:     "/",
	})

	return response.SuccessWithMessage(c, "Logged out successfully", nil)
}

// findAccount looks the email up in users first, then teachers.
func (h *AuthHandler) findAccount(email string) (name, role, passwordHash string, err error) {
	var user model.User
	err = h.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return user.Name, user.Role, user.PasswordHash, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", "", "", err
	}

	var teacher model.Teacher
	err = h.db.Where("email = ?", email).First(&teacher).Error
	if err != nil {
		return "", "", "", err
	}
	return teacher.Name, model.RoleTeacher, teacher.PasswordHash, nil
}
