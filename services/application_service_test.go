package services

import (
	"testing"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/utils/validation"
)

func seededCatalog() []model.Course {
	courses := make([]model.Course, len(model.SeedCourseNames))
	for i, name := range model.SeedCourseNames {
		courses[i] = model.Course{Name: name}
		courses[i].ID = uint(i + 1)
	}
	return courses
}

func TestMatchCourseNameCaseInsensitiveExact(t *testing.T) {
	catalog := seededCatalog()

	tests := []struct {
		name string
		want string // matched course name, "" for no match
	}{
		{"Quran Reading (Nazra)", "Quran Reading (Nazra)"},
		{"quran reading (nazra)", "Quran Reading (Nazra)"},
		{"QURAN MEMORIZATION (HIFZ)", "Quran Memorization (Hifz)"},
		{"islamic STUDIES", "Islamic Studies"},
		{"Nazra", ""},              // substring is not a match
		{"Tajweed Basics", ""},     // not in the catalog
		{"Quran  Reading", ""},     // close but not exact
		{"", ""},
	}

	for _, tt := range tests {
		got := matchCourseName(catalog, tt.name)
		switch {
		case tt.want == "" && got != nil:
			t.Errorf("matchCourseName(%q) = %q, want no match", tt.name, got.Name)
		case tt.want != "" && got == nil:
			t.Errorf("matchCourseName(%q) = nil, want %q", tt.name, tt.want)
		case tt.want != "" && got != nil && got.Name != tt.want:
			t.Errorf("matchCourseName(%q) = %q, want %q", tt.name, got.Name, tt.want)
		}
	}
}

func TestMatchCourseNameEmptyCatalog(t *testing.T) {
	if got := matchCourseName(nil, "Islamic Studies"); got != nil {
		t.Errorf("matchCourseName(empty catalog) = %q, want nil", got.Name)
	}
}

func validInput() ApplicationInput {
	return ApplicationInput{
		FirstName:       "Ayesha",
		LastName:        "Khan",
		Email:           "ayesha@example.com",
		PhoneNumber:     "+44 7700 900000",
		Country:         "United Kingdom",
		Gender:          "Female",
		Age:             9,
		PreferredCourse: "Quran Reading (Nazra)",
	}
}

func TestApplicationInputValidation(t *testing.T) {
	v := validation.NewValidator()

	if err := v.ValidateStruct(validInput()); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*ApplicationInput)
	}{
		{"missing first name", func(in *ApplicationInput) { in.FirstName = "" }},
		{"missing last name", func(in *ApplicationInput) { in.LastName = "" }},
		{"bad email", func(in *ApplicationInput) { in.Email = "not-an-email" }},
		{"missing phone", func(in *ApplicationInput) { in.PhoneNumber = "" }},
		{"missing country", func(in *ApplicationInput) { in.Country = "" }},
		{"missing gender", func(in *ApplicationInput) { in.Gender = "" }},
		{"zero age", func(in *ApplicationInput) { in.Age = 0 }},
		{"negative age", func(in *ApplicationInput) { in.Age = -5 }},
		{"missing course", func(in *ApplicationInput) { in.PreferredCourse = "" }},
	}

	for _, tt := range tests {
		in := validInput()
		tt.mutate(&in)
		if err := v.ValidateStruct(in); err == nil {
			t.Errorf("%s: input passed validation", tt.name)
		}
	}
}

func TestApplicationInputOptionalFields(t *testing.T) {
	v := validation.NewValidator()

	in := validInput()
	in.WhatsappNumber = ""
	in.ParentName = ""
	in.Relationship = ""
	in.PreviousExperience = ""
	in.LearningGoals = ""

	if err := v.ValidateStruct(in); err != nil {
		t.Errorf("input with empty optional fields rejected: %v", err)
	}
}
