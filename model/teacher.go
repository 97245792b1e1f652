package model

import (
	"time"
)

// Teacher is a teaching account. Teachers log in with the same session
// cookie as admins but only ever resolve to the "teacher" role.
type Teacher struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	PhoneNumber  string    `json:"phone_number"`
	Gender       string    `gorm:"not null" json:"gender"`
	Shift        string    `json:"shift"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	CvURL        string    `json:"cv_url,omitempty"`

	// Relationships. Nothing cascades off a teacher: deletion detaches
	// students, schedules and attendance history, preserving the rows.
	Students    []Application `gorm:"foreignKey:TeacherID" json:"students,omitempty"`
	Attendances []Attendance  `gorm:"foreignKey:TeacherID" json:"-"`
	Schedules   []Schedule    `gorm:"foreignKey:TeacherID" json:"schedules,omitempty"`
}
