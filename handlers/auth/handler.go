package auth

import (
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/services"
	authutil "github.com/almursalaat/admin-api/utils/auth"
	"github.com/almursalaat/admin-api/utils/validation"
)

// AuthHandler handles login, logout and password management for both admin
// and teacher accounts.
type AuthHandler struct {
	db         *gorm.DB
	jwtManager *authutil.JWTManager
	validator  *validation.Validator
	notifier   *services.Notifier
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *gorm.DB, jwtManager *authutil.JWTManager, validator *validation.Validator, notifier *services.Notifier) *AuthHandler {
	return &AuthHandler{
		db:         db,
		jwtManager: jwtManager,
		validator:  validator,
		notifier:   notifier,
	}
}
