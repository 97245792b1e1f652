package model

import (
	"time"
)

// Application statuses. The status only ever moves Pending -> Approved,
// when a teacher and shift are assigned.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
)

// Application is a student's admission record. It is created either by the
// public submit-application form or by an admin, and becomes Approved once a
// teacher and shift have been assigned.
type Application struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	FirstName          string    `gorm:"not null;index" json:"first_name"`
	LastName           string    `gorm:"not null;index" json:"last_name"`
	Email              string    `gorm:"uniqueIndex;not null" json:"email"`
	PhoneNumber        string    `gorm:"not null" json:"phone_number"`
	WhatsappNumber     string    `json:"whatsapp_number,omitempty"`
	Country            string    `gorm:"not null" json:"country"`
	Gender             string    `gorm:"not null" json:"gender"`
	Age                int       `gorm:"not null" json:"age"`
	ParentName         string    `json:"parent_name,omitempty"`
	Relationship       string    `json:"relationship,omitempty"`
	PreferredCourse    string    `gorm:"not null" json:"preferred_course"`
	PreviousExperience string    `gorm:"type:text" json:"previous_experience,omitempty"`
	LearningGoals      string    `gorm:"type:text" json:"learning_goals,omitempty"`
	Status             string    `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	Shift              string    `json:"shift,omitempty"`

	// CourseID is set when the free-text preferred course matches a catalog
	// entry (case-insensitive exact match); otherwise it stays NULL.
	CourseID  *uint `gorm:"index" json:"course_id,omitempty"`
	TeacherID *uint `gorm:"index" json:"teacher_id,omitempty"`

	// Relationships
	Course      *Course      `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	Teacher     *Teacher     `gorm:"foreignKey:TeacherID" json:"-"`
	Attendances []Attendance `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Schedules   []Schedule   `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
}
