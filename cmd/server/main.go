package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"nika-sop.backend/internal/config"
	"nika-sop.backend/internal/infrastructure/mailer"
	"nika-sop.backend/internal/infrastructure/models"
	"nika-sop.backend/internal/infrastructure/repositories"
	"nika-sop.backend/internal/infrastructure/textgen"
	"nika-sop.backend/internal/interfaces/http/handlers"
	"nika-sop.backend/internal/interfaces/http/middleware"
	"nika-sop.backend/internal/metrics"
	"nika-sop.backend/internal/usecases"
	"nika-sop.backend/pkg/jwt"
	"nika-sop.backend/pkg/logger"
	"nika-sop.backend/web"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	openDB     = func(cfg config.DatabaseConfig) (*gorm.DB, error) {
		if cfg.URL != "" {
			return gorm.Open(postgres.Open(cfg.URL), &gorm.Config{})
		}
		return gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }

	newMailSender = mailer.NewSender
	newGenerator  = func(apiKey string) usecases.TextGenerator {
		return textgen.NewOpenAIGenerator(apiKey)
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Register Prometheus collectors
	metrics.Register()

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.SOP{}, &models.Lead{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	r, err := buildRouter(cfg, db)
	if err != nil {
		return err
	}

	logger.Info(context.Background(), "Server starting", zap.String("port", cfg.Server.Port))
	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// buildRouter wires repositories, usecases and handlers into a gin engine
func buildRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	// Initialize session signing service
	sessionService := jwt.NewSessionService(cfg.Session.Secret, cfg.Session.Expiry)

	// Initialize mail sender and text generator
	mail := newMailSender(cfg.SMTP)
	generator := newGenerator(cfg.OpenAI.APIKey)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	sopRepo := repositories.NewSOPRepository(db)
	leadRepo := repositories.NewLeadRepository(db)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, mail, sessionService, cfg.App.BaseURL)
	sopUsecase := usecases.NewSOPUsecase(sopRepo, leadRepo, generator, cfg.App.FreeSOPLimit)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase, cfg.Session.Expiry)
	sopHandler := handlers.NewSOPHandler(sopUsecase, mail)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.SessionMiddleware(sessionService))

	r.SetHTMLTemplate(web.Templates())

	registerRoutes(r, routeDeps{
		authHandler: authHandler,
		sopHandler:  sopHandler,
	})

	return r, nil
}
