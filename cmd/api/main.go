package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hostalia/roomservice-api/internal/application/service"
	"github.com/hostalia/roomservice-api/internal/config"
	"github.com/hostalia/roomservice-api/internal/infrastructure/database"
	"github.com/hostalia/roomservice-api/internal/infrastructure/repository"
	"github.com/hostalia/roomservice-api/internal/presentation/http/handler"
	"github.com/hostalia/roomservice-api/internal/presentation/http/routes"
	"github.com/hostalia/roomservice-api/internal/realtime"
	"github.com/hostalia/roomservice-api/pkg/logger"
	"github.com/hostalia/roomservice-api/pkg/utils"
	"github.com/hostalia/roomservice-api/pkg/webhook"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zapLogger, err := logger.New(cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zapLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed default data
	if err := database.SeedDefaultData(db, zapLogger); err != nil {
		zapLogger.Warn("Failed to seed default data", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	hotelRepo := repository.NewHotelRepository(db)
	menuRepo := repository.NewMenuItemRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	closureRepo := repository.NewClosureRepository(db)
	archiveRepo := repository.NewArchiveRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// Initialize websocket hub
	hub := realtime.NewHub(zapLogger)
	go hub.Run()

	// Initialize services
	webhookClient := webhook.NewClient(cfg.Webhook.Timeout)
	reportService := service.NewReportService(webhookClient, auditRepo, cfg.Webhook.DefaultURL, zapLogger)
	authService := service.NewAuthService(userRepo, hotelRepo, jwtManager)
	hotelService := service.NewHotelService(hotelRepo, userRepo)
	menuService := service.NewMenuService(menuRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	orderService := service.NewOrderService(orderRepo, menuRepo, hotelRepo, auditRepo, reportService, hub, zapLogger)
	statsService := service.NewStatsService(orderRepo, hotelRepo, archiveRepo)
	closureService := service.NewClosureService(orderRepo, closureRepo, archiveRepo, auditRepo, hotelRepo, reportService, hub, zapLogger)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Hotel:    handler.NewHotelHandler(hotelService),
		Menu:     handler.NewMenuHandler(menuService),
		Supplier: handler.NewSupplierHandler(supplierService),
		Order:    handler.NewOrderHandler(orderService),
		Closure:  handler.NewClosureHandler(closureService),
		Stats:    handler.NewStatsHandler(statsService, reportService),
		WS:       handler.NewWSHandler(hub, zapLogger),
	}

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		HotelRepo:  hotelRepo,
		Logger:     zapLogger,
	})

	zapLogger.Info("starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + cfg.App.Port); err != nil {
		zapLogger.Fatal("Server failed", zap.Error(err))
	}
}
