package main

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/yukikurage/store-management-api/internal/config"
	"github.com/yukikurage/store-management-api/internal/database"
	"github.com/yukikurage/store-management-api/internal/handlers"
	"github.com/yukikurage/store-management-api/internal/logger"
	"github.com/yukikurage/store-management-api/internal/repository"
	"github.com/yukikurage/store-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLogger := logger.New(logger.Config{Env: cfg.AppEnv, Level: cfg.LogLevel})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	vendorRepo := repository.NewVendorRepository(db)

	// Services
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	access := services.NewAccessResolver(storeRepo)

	r := handlers.NewRouter(handlers.Services{
		Tokens:   tokens,
		Auth:     services.NewAuthService(userRepo, tokens),
		Store:    services.NewStoreService(storeRepo, access),
		Category: services.NewCategoryService(categoryRepo, access),
		Customer: services.NewCustomerService(customerRepo, access),
		Vendor:   services.NewVendorService(vendorRepo, access),
		Staff:    services.NewStaffService(storeRepo, userRepo, access),
	}, appLogger)

	// Start server
	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("server starting")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
