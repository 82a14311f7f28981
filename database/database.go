package database

import (
	"fmt"
	"log"

	"github.com/Magar0077/EduManage/config"
	"github.com/Magar0077/EduManage/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect establishes a connection to the configured database, runs
// migrations and seeds the demo catalog. The returned handle is passed into
// the routers; there is no package-level instance.
func Connect(cfg *config.Config) *gorm.DB {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBName)
	case "mysql":
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
		)
		dialector = mysql.Open(dsn)
	default:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
		)
		dialector = postgres.Open(dsn)
	}

	// TranslateError maps driver unique-violation errors to
	// gorm.ErrDuplicatedKey so handlers can answer with the right status
	// instead of a raw storage error.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database (%s): %v", cfg.DBDriver, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	if err := Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	Seed(db)

	return db
}

// Migrate performs database migrations
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Module{},
		&models.Enrollment{},
		&models.RevokedSession{},
		&models.ContactMessage{},
	)
	if err != nil {
		return err
	}

	// At most one row may carry the ADMIN role. Two racing first
	// registrations both pass the count check, but only one insert can
	// satisfy this index; the loser is retried as a student.
	switch db.Dialector.Name() {
	case "mysql":
		// MySQL has no partial indexes; a unique functional index that
		// yields NULL for non-admin rows (8.0.13+) enforces the same rule.
		// CREATE INDEX has no IF NOT EXISTS there, so check first.
		var indexCount int64
		db.Raw(
			`SELECT COUNT(*) FROM information_schema.statistics
			 WHERE table_schema = DATABASE() AND table_name = 'users' AND index_name = 'idx_users_single_admin'`,
		).Scan(&indexCount)
		if indexCount == 0 {
			if err := db.Exec(
				`CREATE UNIQUE INDEX idx_users_single_admin ON users ((CASE WHEN role = 'ADMIN' THEN 1 END))`,
			).Error; err != nil {
				return err
			}
		}
	default:
		if err := db.Exec(
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_single_admin ON users (role) WHERE role = 'ADMIN'`,
		).Error; err != nil {
			return err
		}
	}

	log.Println("Migrations completed successfully.")
	return nil
}

// Seed loads the demo catalog when the course table is empty
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.Course{}).Count(&count)
	if count > 0 {
		return
	}

	courses := []models.Course{
		{Code: "BIT6113", Title: "Data Communication And Network", Category: "BIT", Description: "Network fundamentals."},
		{Code: "BIT6083", Title: "Object Oriented Programming", Category: "BIT", Description: "Programming with Java/C++."},
		{Code: "BIT6063", Title: "Discrete Mathematics", Category: "BIT", Description: "Mathematical logic."},
	}
	if err := db.Create(&courses).Error; err != nil {
		log.Printf("Error seeding course catalog: %v", err)
	}
}
