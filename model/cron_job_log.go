package model

import (
	"time"

	"gorm.io/datatypes"
)

// CronJobLog records one run of a scheduled maintenance job.
type CronJobLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	JobName    string         `gorm:"not null;index" json:"job_name"`
	StartedAt  time.Time      `gorm:"not null" json:"started_at"`
	FinishedAt *time.Time     `json:"finished_at,omitempty"`
	Success    bool           `json:"success"`
	Message    string         `gorm:"type:text" json:"message,omitempty"`
	Details    datatypes.JSON `json:"details,omitempty"`
}
