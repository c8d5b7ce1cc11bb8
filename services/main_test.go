package services

import (
	"context"
	"testing"

	"looncamp-backend/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the production schema
// and seed rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("raw db: %v", err)
	}
	// one connection keeps the in-memory database alive and shared
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := config.SeedDatabase(db, "", ""); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func newTestServices(t *testing.T) (*PropertyService, *CategoryService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	categories := NewCategoryService(db)
	return NewPropertyService(db, categories), categories, db
}

func validInput(title string) PropertyInput {
	return PropertyInput{
		Title:       title,
		Description: "Tents by the water",
		Category:    "camping",
		Location:    "Pawna Lake",
		Price:       "₹2,999",
		PriceNote:   "per person with meal",
		Capacity:    4,
	}
}

func mustCreate(t *testing.T, svc *PropertyService, in PropertyInput) CreatedProperty {
	t.Helper()
	created, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("create %q: %v", in.Title, err)
	}
	return created
}

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }
