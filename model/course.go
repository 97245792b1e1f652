package model

import (
	"time"
)

// Course is a canonical catalog entry. The catalog is seeded at startup and
// application preferred-course strings are linked to it by case-insensitive
// exact name match.
type Course struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Students []Application `gorm:"foreignKey:CourseID" json:"-"`
}

// SeedCourseNames is the fixed catalog created at startup.
var SeedCourseNames = []string{
	"Quran Learning (Kayda)",
	"Quran Reading (Nazra)",
	"Quran Memorization (Hifz)",
	"Islamic Studies",
}
