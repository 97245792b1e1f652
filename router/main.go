package router

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/almursalaat/admin-api/config"
	"github.com/almursalaat/admin-api/database"
	"github.com/almursalaat/admin-api/handlers"
	admin_handlers "github.com/almursalaat/admin-api/handlers/admin"
	auth_handlers "github.com/almursalaat/admin-api/handlers/auth"
	files_handlers "github.com/almursalaat/admin-api/handlers/files"
	public_handlers "github.com/almursalaat/admin-api/handlers/public"
	teacher_handlers "github.com/almursalaat/admin-api/handlers/teacher"
	"github.com/almursalaat/admin-api/services"
	"github.com/almursalaat/admin-api/services/storage"
	"github.com/almursalaat/admin-api/utils/auth"
	"github.com/almursalaat/admin-api/utils/cache"
	"github.com/almursalaat/admin-api/utils/middleware"
	"github.com/almursalaat/admin-api/utils/validation"
)

// submit-application rate limit: 3 requests per 2 minutes per IP
const (
	submitLimitMax    = 3
	submitLimitWindow = 2 * time.Minute
)

// SetupRoutes wires every endpoint, building the handler graph from the
// store and config.
func SetupRoutes(app *fiber.App, store *database.GORMStore, cfg *config.Config) error {
	db := store.DB()

	jwtManager := auth.NewJWTManager(auth.JWTConfig{
		Secret: cfg.JWT_SECRET,
		Expiry: 24 * time.Hour,
		Issuer: cfg.JWT_ISSUER,
	})

	validator := validation.NewValidator()

	// Redis backs the submit-application rate limiter. A missing Redis
	// degrades to no limiting rather than blocking startup.
	var redisCache *cache.RedisCache
	if cfg.REDIS_URL != "" {
		var err error
		redisCache, err = cache.NewRedisCache(cfg.REDIS_URL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v. Rate limiting will be disabled.", err)
			redisCache = nil
		}
	}
	rateLimiter := middleware.NewRateLimiter(redisCache, submitLimitMax, submitLimitWindow, cfg.DISABLE_RATE_LIMIT)

	files, localStore, err := buildFileStore(cfg)
	if err != nil {
		return err
	}

	emailService := services.NewEmailService(cfg)
	sheetsService := services.NewSheetsService(cfg)
	notifier := services.NewNotifier(emailService, sheetsService)
	applicationService := services.NewApplicationService(db)
	attendanceService := services.NewAttendanceService(db)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager, db)

	authHandler := auth_handlers.NewAuthHandler(db, jwtManager, validator, notifier)
	publicHandler := public_handlers.NewApplicationHandler(applicationService, notifier, validator)
	adminHandler := admin_handlers.NewAdminHandler(db, validator, notifier, files, applicationService, attendanceService)
	teacherHandler := teacher_handlers.NewTeacherHandler(db, attendanceService)
	fileHandler := files_handlers.NewFileHandler(localStore)

	// Health check
	app.Get("/", func(c *fiber.Ctx) error {
		return handlers.HandleCheckHealth(c, store)
	})

	// Public application form, rate limited
	app.Post("/submit-application/", rateLimiter.Limit(), publicHandler.SubmitApplication)

	api := app.Group("/api")

	// Session
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Post("/forgot-pass", authHandler.ForgotPassword)
	api.Post("/change-password", authMiddleware.RequireRoles(middleware.AnyRole), authHandler.ChangePassword)

	// Locally stored uploads (photos are shown in the admin console)
	api.Get("/files/debug", authMiddleware.RequireRoles(middleware.AdminRoles), fileHandler.Debug)
	api.Get("/files/:category/:name", fileHandler.Serve)

	// Admin console
	admin := api.Group("/admin", authMiddleware.RequireRoles(middleware.AdminRoles))

	admin.Get("/dashboard-stats", adminHandler.DashboardStats)

	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users", authMiddleware.RequireRoles(middleware.SupremeOnly), adminHandler.CreateAdmin)
	admin.Patch("/users/:id", adminHandler.UpdateUser)
	admin.Delete("/users/:id", authMiddleware.RequireRoles(middleware.SupremeOnly), adminHandler.DeleteUser)
	admin.Delete("/users/:id/photo", authMiddleware.RequireRoles(middleware.SupremeOnly), adminHandler.DeleteUserPhoto)
	admin.Delete("/users/:id/cv", authMiddleware.RequireRoles(middleware.SupremeOnly), adminHandler.DeleteUserCV)
	admin.Post("/users/me/change-password", authHandler.ChangePassword)

	admin.Get("/teachers", adminHandler.ListTeachers)
	admin.Post("/teachers", authMiddleware.RequireRoles(middleware.SupremeOnly), adminHandler.CreateTeacher)
	admin.Patch("/teachers/:id", adminHandler.UpdateTeacher)
	admin.Delete("/teachers/:id", authMiddleware.RequireRoles(middleware.SupremeOnly), adminHandler.DeleteTeacher)
	admin.Delete("/teachers/:id/photo", authMiddleware.RequireRoles(middleware.SupremeOnly), adminHandler.DeleteTeacherPhoto)
	admin.Delete("/teachers/:id/cv", authMiddleware.RequireRoles(middleware.SupremeOnly), adminHandler.DeleteTeacherCV)

	admin.Get("/students", adminHandler.ListStudents)
	admin.Post("/add-student", adminHandler.AddStudent)
	admin.Get("/students/:id", adminHandler.GetStudent)
	admin.Patch("/students/:id", adminHandler.UpdateStudent)
	admin.Patch("/students/:id/assign", adminHandler.AssignTeacher)
	admin.Delete("/students/:id", adminHandler.DeleteStudent)

	admin.Get("/schedules", adminHandler.ListSchedules)
	admin.Post("/schedules", adminHandler.CreateSchedule)
	admin.Patch("/schedules/:id", adminHandler.UpdateSchedule)
	admin.Delete("/schedules/:id", adminHandler.DeleteSchedule)

	admin.Get("/attendance", adminHandler.ListAttendance)
	admin.Post("/attendance", adminHandler.MarkAttendance)
	admin.Patch("/attendance/:id", adminHandler.UpdateAttendance)
	admin.Get("/session-attendance", adminHandler.ListSessionAttendance)
	admin.Post("/session-attendance", adminHandler.CreateSessionAttendance)
	admin.Patch("/session-attendance/:id", adminHandler.UpdateAttendance)
	admin.Get("/attendance-count", adminHandler.AttendanceCount)

	// Teacher portal
	teacher := api.Group("/teacher", authMiddleware.RequireRoles(middleware.TeacherOnly))
	teacher.Get("/me", teacherHandler.Me)
	teacher.Get("/my-attendance-stats", teacherHandler.MyAttendanceStats)

	return nil
}

// buildFileStore picks the storage backend from config. The local store is
// returned separately because the file-serving handler only works with it.
func buildFileStore(cfg *config.Config) (storage.FileStore, *storage.LocalStore, error) {
	if cfg.STORAGE_BACKEND == "spaces" {
		spaces, err := storage.NewSpacesStore(storage.SpacesConfig{
			AccessKey: cfg.SPACES_ACCESS_KEY,
			SecretKey: cfg.SPACES_SECRET_KEY,
			Bucket:    cfg.SPACES_BUCKET,
			Region:    cfg.SPACES_REGION,
			Endpoint:  cfg.SPACES_ENDPOINT,
			CDNURL:    cfg.SPACES_CDN_URL,
		})
		if err != nil {
			return nil, nil, err
		}
		return spaces, nil, nil
	}

	local, err := storage.NewLocalStore(cfg.UPLOAD_DIR)
	if err != nil {
		return nil, nil, err
	}
	return local, local, nil
}
