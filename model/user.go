package model

import (
	"time"
)

// Admin roles. Exactly one supreme-admin is seeded at startup.
const (
	RoleAdmin        = "admin"
	RoleSupremeAdmin = "supreme-admin"
	RoleTeacher      = "teacher"
)

// User is an administrator account (admin or supreme-admin). Teachers live
// in their own table; the auth gate resolves an email against both.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	PhoneNumber  string    `json:"phone_number"`
	Gender       string    `json:"gender"`
	Role         string    `gorm:"type:varchar(20);default:'admin'" json:"role"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	CvURL        string    `json:"cv_url,omitempty"`
}
