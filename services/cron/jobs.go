package cron

import (
	"fmt"

	"github.com/almursalaat/admin-api/model"
)

// SendPendingDigest mails the admin inbox a summary of applications still
// waiting for a teacher assignment. Nothing pending means nothing sent.
func (m *CronManager) SendPendingDigest() (string, error) {
	var pending []model.Application
	err := m.db.Where("status = ?", model.StatusPending).
		Order("created_at ASC").
		Find(&pending).Error
	if err != nil {
		return "", err
	}

	if len(pending) == 0 {
		return "no pending applications", nil
	}

	if err := m.email.SendPendingDigest(m.digestEmail, pending); err != nil {
		return "", err
	}

	return fmt.Sprintf("digest sent for %d pending applications", len(pending)), nil
}

// SweepOrphanedAttendance deletes attendance rows whose student row is gone.
// Student deletion normally cascades, so this catches rows left behind by
// out-of-band deletes; without it they surface as "Unknown" in the monthly
// report forever.
func (m *CronManager) SweepOrphanedAttendance() (string, error) {
	result := m.db.
		Where("student_id NOT IN (?)", m.db.Model(&model.Application{}).Select("id")).
		Delete(&model.Attendance{})
	if result.Error != nil {
		return "", result.Error
	}

	return fmt.Sprintf("removed %d orphaned attendance rows", result.RowsAffected), nil
}
