package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadENV loads environment variables from .env unless GO_ENV says otherwise
func LoadENV() error {
	goEnv := os.Getenv("GO_ENV")

	if goEnv == "" || goEnv == "development" {
		if err := godotenv.Load(); err != nil {
			return err
		}
	}

	return nil
}

// Config holds every environment-driven setting. It is built once at startup
// and passed down by dependency injection; nothing reads os.Getenv after this.
type Config struct {
	GO_ENV       string
	PORT         int
	DB_USER_NAME string
	DB_PASSWORD  string
	DB_NAME      string
	DB_HOST      string
	DB_PORT      string
	DB_SSL_MODE  string
	// JWT
	JWT_SECRET string
	JWT_ISSUER string
	// Redis (submit-application rate limiter)
	REDIS_URL          string
	DISABLE_RATE_LIMIT bool
	// Email (SendGrid)
	SENDGRID_API_KEY   string
	FROM_EMAIL         string
	ADMIN_NOTIFY_EMAIL string
	// Spreadsheet logging
	SHEETS_WEBHOOK_URL string
	// File storage: "local" or "spaces"
	STORAGE_BACKEND   string
	UPLOAD_DIR        string
	SPACES_ACCESS_KEY string
	SPACES_SECRET_KEY string
	SPACES_BUCKET     string
	SPACES_REGION     string
	SPACES_ENDPOINT   string
	SPACES_CDN_URL    string
	// Seeded supreme-admin account
	SUPREME_ADMIN_EMAIL    string
	SUPREME_ADMIN_PASSWORD string
	// Misc
	CRON_ENABLED    bool
	ALLOWED_ORIGINS string
}

func Get() (*Config, error) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 8080
	}

	// Database defaults
	dbHost := os.Getenv("DB_HOST")
	if dbHost == "" {
		dbHost = "localhost"
	}

	dbPort := os.Getenv("DB_PORT")
	if dbPort == "" {
		dbPort = "5432"
	}

	storageBackend := os.Getenv("STORAGE_BACKEND")
	if storageBackend == "" {
		storageBackend = "local"
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}

	fromEmail := os.Getenv("FROM_EMAIL")
	if fromEmail == "" {
		fromEmail = "almursalaatonline@gmail.com"
	}

	adminNotifyEmail := os.Getenv("ADMIN_NOTIFY_EMAIL")
	if adminNotifyEmail == "" {
		adminNotifyEmail = fromEmail
	}

	disableRateLimit, _ := strconv.ParseBool(os.Getenv("DISABLE_RATE_LIMIT"))

	cfg := &Config{
		GO_ENV:       os.Getenv("GO_ENV"),
		PORT:         port,
		DB_USER_NAME: os.Getenv("DB_USER_NAME"),
		DB_PASSWORD:  os.Getenv("DB_PASSWORD"),
		DB_NAME:      os.Getenv("DB_NAME"),
		DB_HOST:      dbHost,
		DB_PORT:      dbPort,
		DB_SSL_MODE:  os.Getenv("DB_SSL_MODE"),
		// JWT
		JWT_SECRET: os.Getenv("JWT_SECRET"),
		JWT_ISSUER: os.Getenv("JWT_ISSUER"),
		// Redis
		REDIS_URL:          os.Getenv("REDIS_URL"),
		DISABLE_RATE_LIMIT: disableRateLimit,
		// Email
		SENDGRID_API_KEY:   os.Getenv("SENDGRID_API_KEY"),
		FROM_EMAIL:         fromEmail,
		ADMIN_NOTIFY_EMAIL: adminNotifyEmail,
		// Sheets
		SHEETS_WEBHOOK_URL: os.Getenv("SHEETS_WEBHOOK_URL"),
		// Storage
		STORAGE_BACKEND:   storageBackend,
		UPLOAD_DIR:        uploadDir,
		SPACES_ACCESS_KEY: os.Getenv("SPACES_ACCESS_KEY"),
		SPACES_SECRET_KEY: os.Getenv("SPACES_SECRET_KEY"),
		SPACES_BUCKET:     os.Getenv("SPACES_BUCKET"),
		SPACES_REGION:     os.Getenv("SPACES_REGION"),
		SPACES_ENDPOINT:   os.Getenv("SPACES_ENDPOINT"),
		SPACES_CDN_URL:    os.Getenv("SPACES_CDN_URL"),
		// Seed account
		SUPREME_ADMIN_EMAIL:    os.Getenv("SUPREME_ADMIN_EMAIL"),
		SUPREME_ADMIN_PASSWORD: os.Getenv("SUPREME_ADMIN_PASSWORD"),
		// Misc
		CRON_ENABLED:    os.Getenv("CRON_ENABLED") != "false",
		ALLOWED_ORIGINS: os.Getenv("ALLOWED_ORIGINS"),
	}

	return cfg, nil
}
