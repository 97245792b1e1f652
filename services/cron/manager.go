package cron

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/services"
)

// CronManager manages the scheduled maintenance jobs: the daily pending-
// application digest and the nightly orphaned-attendance sweep.
type CronManager struct {
	cron        *cron.Cron
	db          *gorm.DB
	email       *services.EmailService
	digestEmail string
}

// NewCronManager creates a new cron manager
func NewCronManager(db *gorm.DB, email *services.EmailService, digestEmail string) *CronManager {
	// Seconds precision, matching the schedule expressions below
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:        c,
		db:          db,
		email:       email,
		digestEmail: digestEmail,
	}
}

// Start registers and starts all cron jobs
func (m *CronManager) Start() error {
	log.Println("Starting cron jobs...")

	// Daily at 8 AM: mail the pending-application digest
	_, err := m.cron.AddFunc("0 0 8 * * *", func() {
		m.run("pending_application_digest", m.SendPendingDigest)
	})
	if err != nil {
		return err
	}

	// Daily at 2:30 AM: sweep attendance rows orphaned by student deletions
	_, err = m.cron.AddFunc("0 30 2 * * *", func() {
		m.run("sweep_orphaned_attendance", m.SweepOrphanedAttendance)
	})
	if err != nil {
		return err
	}

	m.cron.Start()

	log.Println("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones to finish
func (m *CronManager) Stop() {
	log.Println("Stopping cron jobs...")
	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Println("Cron jobs stopped")
}

// run executes a job and records the outcome in cron_job_logs.
func (m *CronManager) run(jobName string, job func() (string, error)) {
	log.Printf("[CRON] Starting job: %s", jobName)

	entry := model.CronJobLog{
		JobName:   jobName,
		StartedAt: time.Now(),
		Details:   datatypes.JSON([]byte("{}")),
	}
	m.db.Create(&entry)

	message, err := job()
	now := time.Now()
	entry.FinishedAt = &now

	if err != nil {
		log.Printf("[CRON] Error in job %s: %v", jobName, err)
		entry.Success = false
		entry.Message = err.Error()
	} else {
		log.Printf("[CRON] Completed job %s: %s", jobName, message)
		entry.Success = true
		entry.Message = message
	}

	m.db.Save(&entry)
}
