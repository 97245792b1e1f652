package model

import (
	"reflect"
	"strings"
	"testing"
)

// Deleting a teacher detaches students, schedules and attendance rather than
// dropping them: every column referencing a teacher must be nullable, and no
// teacher relation may carry a delete cascade that would erase history at
// the database level.
func TestTeacherReferencesSurviveDeletion(t *testing.T) {
	nullableRefs := []struct {
		owner string
		field reflect.StructField
	}{
		{"Application", fieldOf(t, Application{}, "TeacherID")},
		{"Schedule", fieldOf(t, Schedule{}, "TeacherID")},
		{"Attendance", fieldOf(t, Attendance{}, "TeacherID")},
	}
	for _, ref := range nullableRefs {
		if ref.field.Type.Kind() != reflect.Ptr {
			t.Errorf("%s.TeacherID is %s, want a nullable pointer", ref.owner, ref.field.Type)
		}
	}

	for _, name := range []string{"Students", "Attendances", "Schedules"} {
		f := fieldOf(t, Teacher{}, name)
		if tag := f.Tag.Get("gorm"); strings.Contains(tag, "OnDelete:CASCADE") {
			t.Errorf("Teacher.%s cascades on delete (%q); deletion must detach, not erase", name, tag)
		}
	}
}

// Student deletion, by contrast, does take the student's schedules and
// attendance with it.
func TestStudentOwnedRowsCascade(t *testing.T) {
	for _, name := range []string{"Attendances", "Schedules"} {
		f := fieldOf(t, Application{}, name)
		if tag := f.Tag.Get("gorm"); !strings.Contains(tag, "OnDelete:CASCADE") {
			t.Errorf("Application.%s does not cascade (%q)", name, tag)
		}
	}
}

func fieldOf(t *testing.T, s interface{}, name string) reflect.StructField {
	t.Helper()
	f, ok := reflect.TypeOf(s).FieldByName(name)
	if !ok {
		t.Fatalf("field %s not found on %T", name, s)
	}
	return f
}
