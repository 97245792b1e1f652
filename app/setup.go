package app

import (
	"fmt"
	"log"

	"github.com/almursalaat/admin-api/api"
	"github.com/almursalaat/admin-api/config"
	"github.com/almursalaat/admin-api/database"
	"github.com/almursalaat/admin-api/router"
	"github.com/almursalaat/admin-api/services"
	"github.com/almursalaat/admin-api/services/cron"
	"github.com/almursalaat/admin-api/utils/middleware"
)

// SetupAndRunServer is the whole startup sequence: env, config, database,
// migrations, seed data, cron jobs, middleware, routes, listen.
func SetupAndRunServer() error {
	if err := config.LoadENV(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Get()
	if err != nil {
		return err
	}

	store, err := database.StartGORM(cfg)
	if err != nil {
		log.Println("Check whether Postgres is running and the DB_* variables are set")
		return err
	}

	if err := store.Init(); err != nil {
		log.Println("Failed to run database migrations")
		return err
	}

	seeder := database.NewSeeder(store.DB(), cfg)
	if err := seeder.SeedAll(); err != nil {
		return err
	}

	var cronManager *cron.CronManager
	if cfg.CRON_ENABLED {
		emailService := services.NewEmailService(cfg)
		cronManager = cron.NewCronManager(store.DB(), emailService, cfg.ADMIN_NOTIFY_EMAIL)
		if err := cronManager.Start(); err != nil {
			// A broken schedule expression should not take the API down
			log.Printf("Warning: Failed to start cron jobs: %v", err)
			cronManager = nil
		}
	}

	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	server := api.NewAPIServer(fmt.Sprintf(":%d", cfg.PORT))
	app := server.GetEngine()

	middleware.SetupSecurity(app, middleware.SecurityConfig{
		AllowedOrigins: cfg.ALLOWED_ORIGINS,
	})

	if err := router.SetupRoutes(app, store, cfg); err != nil {
		return err
	}

	return server.Run()
}
