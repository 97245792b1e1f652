package model

import (
	"time"
)

// Schedule is a recurring weekly teacher/student time slot. Times are kept
// as "HH:MM:SS" strings; the system never does arithmetic on them.
type Schedule struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	DayOfWeek string    `gorm:"not null" json:"day_of_week"`
	StartTime string    `gorm:"not null" json:"start_time"`
	EndTime   string    `gorm:"not null" json:"end_time"`
	ZoomLink  string    `json:"zoom_link,omitempty"`
	StudentID uint      `gorm:"not null;index" json:"student_id"`
	// TeacherID is nullable: deleting a teacher detaches their schedules
	// instead of dropping them.
	TeacherID *uint `gorm:"index" json:"teacher_id,omitempty"`

	// Relationships
	Student Application `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Teacher *Teacher    `gorm:"foreignKey:TeacherID" json:"-"`
}
