package model

import (
	"time"
)

// Attendance records one class session for one student. Status values are
// free-form strings, not an enum: whatever a teacher records becomes its own
// bucket in the monthly report.
//
// Identity is immutable once created: at most one row per (student, date)
// when unscheduled, or per (schedule, date) when tied to a session. Only the
// status fields and notes are patchable.
type Attendance struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	ClassDate     time.Time `gorm:"type:date;not null;index" json:"class_date"`
	Status        string    `gorm:"not null" json:"status"`
	TeacherStatus string    `json:"teacher_status,omitempty"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	ScheduleID    *uint     `gorm:"index" json:"schedule_id,omitempty"`
	StudentID     uint      `gorm:"not null;index" json:"student_id"`
	// TeacherID is nullable: deleting a teacher detaches their attendance
	// history instead of dropping it.
	TeacherID *uint `gorm:"index" json:"teacher_id,omitempty"`

	// Relationships
	Student  Application `gorm:"foreignKey:StudentID" json:"student,omitempty"`
	Teacher  *Teacher    `gorm:"foreignKey:TeacherID" json:"-"`
	Schedule *Schedule   `gorm:"foreignKey:ScheduleID" json:"-"`
}
