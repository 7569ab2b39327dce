package app

import (
	"fmt"

	"github.com/dropkit/dropkit/internal/config"
	"github.com/dropkit/dropkit/internal/db"
	"github.com/dropkit/dropkit/internal/repository"
	"github.com/dropkit/dropkit/internal/service"
	"github.com/dropkit/dropkit/internal/storage"
	"github.com/jmoiron/sqlx"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	TokenService   *service.TokenService
	UserService    *service.UserService
	FileService    *service.FileService
	WebhookService *service.WebhookService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	fileRepository := repository.NewFileRepository(database)

	// Storage
	blobStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository)
	fileService := service.NewFileService(fileRepository, blobStorage, cfg.S3PresignDownload, cfg.S3PresignExpiry)

	webhookService, err := service.NewWebhookService(cfg.ClerkWebhookSecret, userService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize webhook service: %v", err)
	}

	return &App{
		Cfg:            cfg,
		DB:             database,
		TokenService:   tokenService,
		UserService:    userService,
		FileService:    fileService,
		WebhookService: webhookService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
