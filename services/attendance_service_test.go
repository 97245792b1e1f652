package services

import (
	"testing"
	"time"

	"github.com/almursalaat/admin-api/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func student(id uint, preferred string, course *model.Course) model.Application {
	s := model.Application{
		FirstName:       "Student",
		PreferredCourse: preferred,
		Course:          course,
	}
	s.ID = id
	return s
}

func TestCourseLabelPriority(t *testing.T) {
	hifz := &model.Course{Name: "Quran Memorization (Hifz)"}

	tests := []struct {
		name string
		row  model.Attendance
		want string
	}{
		{
			name: "linked course wins over preference",
			row:  model.Attendance{Student: student(1, "something else", hifz)},
			want: "Quran Memorization (Hifz)",
		},
		{
			name: "preference used without linked course",
			row:  model.Attendance{Student: student(2, "Tajweed Basics", nil)},
			want: "Tajweed Basics",
		},
		{
			name: "neither falls back to Unknown",
			row:  model.Attendance{Student: student(3, "", nil)},
			want: UnknownCourseLabel,
		},
	}

	for _, tt := range tests {
		if got := CourseLabel(tt.row); got != tt.want {
			t.Errorf("%s: CourseLabel = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestAggregateMonthGroupsByCourseAndStudent(t *testing.T) {
	nazra := &model.Course{Name: "Quran Reading (Nazra)"}
	ayesha := student(1, "Quran Reading (Nazra)", nazra)
	bilal := student(2, "Tajweed Basics", nil)

	rows := []model.Attendance{
		{StudentID: 1, Student: ayesha, ClassDate: day(2), Status: "Present"},
		{StudentID: 1, Student: ayesha, ClassDate: day(3), Status: "Present"},
		{StudentID: 1, Student: ayesha, ClassDate: day(4), Status: "Absent"},
		{StudentID: 2, Student: bilal, ClassDate: day(2), Status: "Present"},
		{StudentID: 2, Student: bilal, ClassDate: day(3), Status: "Late"},
	}

	stats := AggregateMonth(rows)

	if stats.TotalRecords != 5 {
		t.Fatalf("TotalRecords = %d, want 5", stats.TotalRecords)
	}

	nazraCounts := stats.TeacherByCourse["Quran Reading (Nazra)"]
	if nazraCounts["Present"] != 2 || nazraCounts["Absent"] != 1 {
		t.Errorf("Nazra counts = %v, want Present:2 Absent:1", nazraCounts)
	}
	tajweedCounts := stats.TeacherByCourse["Tajweed Basics"]
	if tajweedCounts["Present"] != 1 || tajweedCounts["Late"] != 1 {
		t.Errorf("Tajweed counts = %v, want Present:1 Late:1", tajweedCounts)
	}

	if got := stats.ByStudent[1].Counts["Present"]; got != 2 {
		t.Errorf("student 1 Present = %d, want 2", got)
	}
	if got := stats.ByStudent[2].Counts["Late"]; got != 1 {
		t.Errorf("student 2 Late = %d, want 1", got)
	}
}

func TestAggregateMonthTeacherStatusFallsBackToStatus(t *testing.T) {
	s := student(1, "Quran Learning (Kayda)", nil)
	rows := []model.Attendance{
		{StudentID: 1, Student: s, Status: "Present"},
		{StudentID: 1, Student: s, Status: "Present", TeacherStatus: "Taught"},
	}

	stats := AggregateMonth(rows)
	counts := stats.TeacherByCourse["Quran Learning (Kayda)"]
	if counts["Present"] != 1 {
		t.Errorf("course counts under Present = %d, want 1 (fallback)", counts["Present"])
	}
	if counts["Taught"] != 1 {
		t.Errorf("course counts under Taught = %d, want 1", counts["Taught"])
	}
}

// Both groupings fold the same rows, so their totals must always match
// TotalRecords.
func TestAggregateMonthSumProperty(t *testing.T) {
	s1 := student(1, "A", nil)
	s2 := student(2, "", nil)
	rows := []model.Attendance{
		{StudentID: 1, Student: s1, Status: "Present"},
		{StudentID: 1, Student: s1, Status: "Excused"},
		{StudentID: 2, Student: s2, Status: "Absent", TeacherStatus: "No Show"},
		{StudentID: 2, Student: s2, Status: "Present"},
	}

	stats := AggregateMonth(rows)

	byCourse := 0
	for _, counts := range stats.TeacherByCourse {
		for _, n := range counts {
			byCourse += n
		}
	}
	byStudent := 0
	for _, entry := range stats.ByStudent {
		for _, n := range entry.Counts {
			byStudent += n
		}
	}

	if byCourse != stats.TotalRecords {
		t.Errorf("course grouping total = %d, want %d", byCourse, stats.TotalRecords)
	}
	if byStudent != stats.TotalRecords {
		t.Errorf("student grouping total = %d, want %d", byStudent, stats.TotalRecords)
	}
}

func TestAggregateMonthEmpty(t *testing.T) {
	stats := AggregateMonth(nil)
	if stats.TotalRecords != 0 {
		t.Errorf("TotalRecords = %d, want 0", stats.TotalRecords)
	}
	if len(stats.TeacherByCourse) != 0 || len(stats.ByStudent) != 0 {
		t.Error("empty input produced non-empty groupings")
	}
}
