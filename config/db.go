package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"looncamp-backend/models"
	"looncamp-backend/utils"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

// Dialector picks the driver from the configured URL: postgres:// and
// postgresql:// go to PostgreSQL, everything else to MySQL.
func Dialector(cfg Config) (gorm.Dialector, error) {
	raw := cfg.DatabaseURL
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return postgres.Open(raw), nil
	case strings.HasPrefix(raw, "mysql://"):
		dsn, err := mysqlDSNFromURL(raw)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case raw != "":
		return mysql.Open(raw), nil
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)
	return mysql.Open(dsn), nil
}

// ConnectDatabase opens the pool, migrates the schema and seeds the fixed rows.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	dialector, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(20)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxIdleTime(30 * time.Second)
	} else {
		log.Printf("info: cannot get raw sql.DB: %v", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := SeedDatabase(db, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate in parent->child order.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Admin{},
		&models.CategorySetting{},
		&models.Property{},
		&models.PropertyImage{},
	)
}

// SeedDatabase makes sure every category has its settings row and, when
// credentials are given and no admin exists yet, provisions the first admin.
func SeedDatabase(db *gorm.DB, adminEmail, adminPassword string) error {
	for _, category := range models.Categories {
		setting := models.CategorySetting{Category: category}
		if err := db.Where(models.CategorySetting{Category: category}).FirstOrCreate(&setting).Error; err != nil {
			return fmt.Errorf("seed category %s: %w", category, err)
		}
	}

	var adminCount int64
	if err := db.Model(&models.Admin{}).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount > 0 {
		return nil
	}
	if adminEmail == "" || adminPassword == "" {
		log.Println("⚠️  no admin provisioned; set ADMIN_EMAIL and ADMIN_PASSWORD or run cmd/admin")
		return nil
	}
	if _, err := UpsertAdmin(db, adminEmail, adminPassword); err != nil {
		return err
	}
	log.Println("Default admin seeded")
	return nil
}

// UpsertAdmin creates the admin with this email, or resets its password when
// it already exists. It reports whether a new row was created.
func UpsertAdmin(db *gorm.DB, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, errors.New("email and password are required")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	var admin models.Admin
	err = db.Where("LOWER(email) = ?", email).First(&admin).Error
	switch {
	case err == nil:
		return false, db.Model(&admin).Update("password_hash", hash).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		admin = models.Admin{Email: email, PasswordHash: hash}
		return true, db.Create(&admin).Error
	default:
		return false, err
	}
}
