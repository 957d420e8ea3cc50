package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/hostalia/roomservice-api/internal/config"
	"github.com/hostalia/roomservice-api/internal/domain/entity"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Info("connected to PostgreSQL", zap.String("host", cfg.Host), zap.String("database", cfg.Name))
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		// Account entities
		&entity.User{},
		&entity.Hotel{},
		&entity.HotelMembership{},

		// Catalog entities
		&entity.MenuItem{},
		&entity.Supplier{},

		// Order entities
		&entity.Order{},
		&entity.OrderItem{},

		// Closure entities
		&entity.ClosureSnapshot{},
		&entity.ArchivedOrder{},

		// System entities
		&entity.AuditEntry{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SeedDefaultData creates the initial super admin and demo hotel when
// configured via environment variables. Safe to run repeatedly.
func SeedDefaultData(db *gorm.DB, log *zap.Logger) error {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		log.Debug("super admin already exists", zap.String("email", adminEmail))
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.User{
		ID:         uuid.New(),
		FirstName:  "Super",
		LastName:   "Admin",
		Email:      adminEmail,
		Password:   string(hashed),
		SuperAdmin: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create super admin: %w", err)
	}
	log.Info("super admin created", zap.String("email", adminEmail))

	if slug := viper.GetString("SEED_HOTEL_SLUG"); slug != "" {
		hotel := entity.Hotel{
			Name:     viper.GetString("SEED_HOTEL_NAME"),
			Slug:     slug,
			Timezone: "Europe/Madrid",
			Active:   true,
		}
		if hotel.Name == "" {
			hotel.Name = slug
		}
		if err := db.Where("slug = ?", slug).FirstOrCreate(&hotel).Error; err != nil {
			log.Warn("failed to seed hotel", zap.String("slug", slug), zap.Error(err))
			return nil
		}
		membership := entity.HotelMembership{HotelID: hotel.ID, UserID: admin.ID, Role: "owner"}
		if err := db.FirstOrCreate(&membership).Error; err != nil {
			log.Warn("failed to seed hotel membership", zap.Error(err))
		}
	}

	return nil
}
