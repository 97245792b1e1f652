package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/utils/validation"
)

// ErrDuplicateEmail is returned when an application with the same email
// already exists. The write is rejected whole; no partial row is left behind.
var ErrDuplicateEmail = errors.New("an application with this email address already exists")

// ApplicationInput is the payload shared by the public submit-application
// form and the admin add-student endpoint.
type ApplicationInput struct {
	FirstName          string `json:"first_name" form:"first_name" validate:"required,max=100"`
	LastName           string `json:"last_name" form:"last_name" validate:"required,max=100"`
	Email              string `json:"email" form:"email" validate:"required,email"`
	PhoneNumber        string `json:"phone_number" form:"phone_number" validate:"required,max=30"`
	WhatsappNumber     string `json:"whatsapp_number" form:"whatsapp_number" validate:"omitempty,max=30"`
	Country            string `json:"country" form:"country" validate:"required,max=100"`
	Gender             string `json:"gender" form:"gender" validate:"required,max=20"`
	Age                int    `json:"age" form:"age" validate:"required,gt=0"`
	ParentName         string `json:"parent_name" form:"parent_name" validate:"omitempty,max=100"`
	Relationship       string `json:"relationship" form:"relationship" validate:"omitempty,max=50"`
	PreferredCourse    string `json:"preferred_course" form:"preferred_course" validate:"required,max=200"`
	PreviousExperience string `json:"previous_experience" form:"previous_experience" validate:"omitempty"`
	LearningGoals      string `json:"learning_goals" form:"learning_goals" validate:"omitempty"`
}

// ApplicationService creates student applications.
type ApplicationService struct {
	db *gorm.DB
}

// NewApplicationService creates a new application service
func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// MatchCourse links a free-text preferred course to a catalog entry by
// case-insensitive exact name match. No match returns nil, not an error. The
// catalog is a handful of rows, so it is loaded whole and matched in memory.
func (s *ApplicationService) MatchCourse(ctx context.Context, name string) (*model.Course, error) {
	var courses []model.Course
	if err := s.db.WithContext(ctx).Find(&courses).Error; err != nil {
		return nil, err
	}
	return matchCourseName(courses, name), nil
}

// matchCourseName picks the catalog course whose name equals the free-text
// preference, ignoring case only. Substrings and typos do not match; an
// unmatched preference simply leaves the application unlinked.
func matchCourseName(courses []model.Course, name string) *model.Course {
	for i := range courses {
		if strings.EqualFold(courses[i].Name, name) {
			return &courses[i]
		}
	}
	return nil
}

// Create inserts a new Pending application after the duplicate-email check.
func (s *ApplicationService) Create(ctx context.Context, in ApplicationInput) (*model.Application, error) {
	var existing model.Application
	err := s.db.WithContext(ctx).Where("email = ?", in.Email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	course, err := s.MatchCourse(ctx, in.PreferredCourse)
	if err != nil {
		return nil, err
	}

	app := &model.Application{
		FirstName:          validation.SanitizeString(in.FirstName),
		LastName:           validation.SanitizeString(in.LastName),
		Email:              validation.SanitizeString(in.Email),
		PhoneNumber:        validation.SanitizeString(in.PhoneNumber),
		WhatsappNumber:     validation.SanitizeString(in.WhatsappNumber),
		Country:            validation.SanitizeString(in.Country),
		Gender:             validation.SanitizeString(in.Gender),
		Age:                in.Age,
		ParentName:         validation.SanitizeString(in.ParentName),
		Relationship:       validation.SanitizeString(in.Relationship),
		PreferredCourse:    validation.SanitizeString(in.PreferredCourse),
		PreviousExperience: in.PreviousExperience,
		LearningGoals:      in.LearningGoals,
		Status:             model.StatusPending,
	}
	if course != nil {
		app.CourseID = &course.ID
		app.Course = course
	}

	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}

	return app, nil
}
