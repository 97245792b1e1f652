package services

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
)

// UnknownCourseLabel is the defensive bucket for attendance rows whose
// student has neither a linked course nor a preferred-course string. Normal
// creation paths make this unreachable, but rows orphaned by a student
// deletion still land somewhere visible instead of vanishing.
const UnknownCourseLabel = "Unknown"

// StatusCounts counts attendance rows per status value. Statuses are
// free-form strings; every distinct value a teacher records is its own bucket.
type StatusCounts map[string]int

// StudentStats is one student's slice of the monthly report.
type StudentStats struct {
	Student model.Application `json:"student"`
	Counts  StatusCounts      `json:"counts"`
}

// MonthlyStats is the monthly attendance report for one teacher: the same
// rows folded two ways. The per-status totals of both groupings always equal
// TotalRecords.
type MonthlyStats struct {
	TeacherByCourse map[string]StatusCounts `json:"teacher_by_course"`
	ByStudent       map[uint]*StudentStats  `json:"student_attendance"`
	TotalRecords    int                     `json:"total_records"`
}

// CourseLabel resolves the course bucket for a row: the linked catalog
// course wins over the free-text preference, which wins over Unknown.
func CourseLabel(a model.Attendance) string {
	if a.Student.Course != nil && a.Student.Course.Name != "" {
		return a.Student.Course.Name
	}
	if a.Student.PreferredCourse != "" {
		return a.Student.PreferredCourse
	}
	return UnknownCourseLabel
}

// teacherStatus picks the teacher-facing status for the course grouping,
// falling back to the student-facing status when the teacher recorded none.
func teacherStatus(a model.Attendance) string {
	if a.TeacherStatus != "" {
		return a.TeacherStatus
	}
	return a.Status
}

// AggregateMonth folds attendance rows into the two monthly groupings.
func AggregateMonth(rows []model.Attendance) MonthlyStats {
	stats := MonthlyStats{
		TeacherByCourse: make(map[string]StatusCounts),
		ByStudent:       make(map[uint]*StudentStats),
		TotalRecords:    len(rows),
	}

	for _, row := range rows {
		label := CourseLabel(row)
		if stats.TeacherByCourse[label] == nil {
			stats.TeacherByCourse[label] = make(StatusCounts)
		}
		stats.TeacherByCourse[label][teacherStatus(row)]++

		entry := stats.ByStudent[row.StudentID]
		if entry == nil {
			entry = &StudentStats{
				Student: row.Student,
				Counts:  make(StatusCounts),
			}
			stats.ByStudent[row.StudentID] = entry
		}
		entry.Counts[row.Status]++
	}

	return stats
}

// AttendanceService builds monthly attendance reports.
type AttendanceService struct {
	db *gorm.DB
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

// MonthlyStats loads every attendance row for the teacher within the
// calendar month (first through last day inclusive) and aggregates it. A
// teacher's monthly volume is tens to low hundreds of rows, so the scan is
// unpaginated by design.
func (s *AttendanceService) MonthlyStats(ctx context.Context, teacherID uint, year, month int) (*MonthlyStats, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	var rows []model.Attendance
	err := s.db.WithContext(ctx).
		Preload("Student").
		Preload("Student.Course").
		Where("teacher_id = ? AND class_date >= ? AND class_date < ?", teacherID, start, end).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	stats := AggregateMonth(rows)
	return &stats, nil
}
