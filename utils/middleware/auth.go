package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/utils/auth"
	"github.com/almursalaat/admin-api/utils/response"
)

// Named role sets. Routes declare their policy with one of these instead of
// ad hoc string comparisons inside handlers.
var (
	AdminRoles   = []string{model.RoleAdmin, model.RoleSupremeAdmin}
	SupremeOnly  = []string{model.RoleSupremeAdmin}
	TeacherOnly  = []string{model.RoleTeacher}
	AnyRole      = []string{model.RoleAdmin, model.RoleSupremeAdmin, model.RoleTeacher}
)

// RoleAllowed reports whether role is in the allowed set.
func RoleAllowed(role string, allowed []string) bool {
	for _, r := range allowed {
		if role == r {
			return true
		}
	}
	return false
}

// AuthMiddleware is the session gate. Every protected request passes two
// checkpoints: the cookie token must validate, and the claimed email must
// still resolve to a live account. The token's role claim is never trusted
// on its own; a stale or tampered token stops granting access the moment the
// account is deleted or its role changes.
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	db         *gorm.DB
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(jwtManager *auth.JWTManager, db *gorm.DB) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		db:         db,
	}
}

// RequireRoles returns a handler that authenticates the session cookie and
// authorizes the resolved role against the allowed set. Authentication
// failures are 401 regardless of cause; an authenticated caller outside the
// allowed set gets a distinct 403.
func (m *AuthMiddleware) RequireRoles(allowed []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(auth.SessionCookie)
		if tokenString == "" {
			return response.Unauthorized(c, "Not authenticated")
		}

		claims, err := m.jwtManager.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired session")
		}

		role, user, teacher, err := m.resolveAccount(claims.Email)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.Unauthorized(c, "Account not found")
			}
			return response.InternalServerError(c, "Failed to load account")
		}

		if !RoleAllowed(role, allowed) {
			return response.Forbidden(c, "Insufficient permissions")
		}

		c.Locals("email", claims.Email)
		c.Locals("role", role)
		if user != nil {
			c.Locals("adminUser", user)
		}
		if teacher != nil {
			c.Locals("teacherUser", teacher)
		}

		return c.Next()
	}
}

// resolveAccount maps an email to its live role: admins live in the users
// table, teachers in their own. Returns gorm.ErrRecordNotFound when neither
// table has the email.
func (m *AuthMiddleware) resolveAccount(email string) (string, *model.User, *model.Teacher, error) {
	var user model.User
	err := m.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		if user.Role != model.RoleAdmin && user.Role != model.RoleSupremeAdmin {
			return "", nil, nil, gorm.ErrRecordNotFound
		}
		return user.Role, &user, nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, nil, err
	}

	var teacher model.Teacher
	err = m.db.Where("email = ?", email).First(&teacher).Error
	if err != nil {
		return "", nil, nil, err
	}
	return model.RoleTeacher, nil, &teacher, nil
}

// GetEmail extracts the authenticated email from context
func GetEmail(c *fiber.Ctx) (string, bool) {
	email, ok := c.Locals("email").(string)
	return email, ok
}

// GetRole extracts the resolved role from context
func GetRole(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals("role").(string)
	return role, ok
}

// GetAdminUser extracts the resolved admin account, if the caller is one
func GetAdminUser(c *fiber.Ctx) (*model.User, bool) {
	user, ok := c.Locals("adminUser").(*model.User)
	return user, ok
}

// GetTeacherUser extracts the resolved teacher account, if the caller is one
func GetTeacherUser(c *fiber.Ctx) (*model.Teacher, bool) {
	teacher, ok := c.Locals("teacherUser").(*model.Teacher)
	return teacher, ok
}
