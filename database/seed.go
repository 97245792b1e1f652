package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/almursalaat/admin-api/config"
	"github.com/almursalaat/admin-api/model"
	"github.com/almursalaat/admin-api/utils/auth"
)

// Seeder handles database seeding operations
type Seeder struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *config.Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// SeedAll runs all seed functions
func (s *Seeder) SeedAll() error {
	log.Println("Starting database seeding...")

	if err := s.SeedSupremeAdmin(); err != nil {
		return fmt.Errorf("failed to seed supreme admin: %w", err)
	}

	if err := s.SeedCourses(); err != nil {
		return fmt.Errorf("failed to seed courses: %w", err)
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedSupremeAdmin creates the single supreme-admin account from the
// environment. Skipped when one already exists or credentials are unset.
func (s *Seeder) SeedSupremeAdmin() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", model.RoleSupremeAdmin).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Supreme admin already exists, skipping...")
		return nil
	}

	if s.cfg.SUPREME_ADMIN_EMAIL == "" || s.cfg.SUPREME_ADMIN_PASSWORD == "" {
		log.Println("SUPREME_ADMIN_EMAIL and SUPREME_ADMIN_PASSWORD not set, skipping supreme admin creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(s.cfg.SUPREME_ADMIN_PASSWORD)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &model.User{
		Name:         "Supreme Admin",
		Email:        s.cfg.SUPREME_ADMIN_EMAIL,
		PasswordHash: passwordHash,
		Role:         model.RoleSupremeAdmin,
	}

	if err := s.db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("Created supreme admin: %s\n", admin.Email)
	return nil
}

// SeedCourses creates the fixed course catalog. Existing names (compared
// case-insensitively) are left untouched.
func (s *Seeder) SeedCourses() error {
	for _, name := range model.SeedCourseNames {
		var count int64
		if err := s.db.Model(&model.Course{}).Where("LOWER(name) = LOWER(?)", name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := s.db.Create(&model.Course{Name: name}).Error; err != nil {
			return err
		}
		log.Printf("Seeded course: %s\n", name)
	}
	return nil
}
