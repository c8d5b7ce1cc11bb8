// Command populate loads the starter catalog of Pawna camps, cottages and
// Lonavala villas. Properties whose title already exists are left alone:
//
//	go run ./cmd/populate
package main

import (
	"context"
	"log"

	"looncamp-backend/config"
	"looncamp-backend/services"
)

func main() {
	cfg := config.Load()
	cfg.AdminEmail, cfg.AdminPassword = "", ""

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	properties := services.NewPropertyService(db, services.NewCategoryService(db))
	result, err := properties.Populate(context.Background(), services.DemoProperties())
	if err != nil {
		log.Fatalf("❌ Populating catalog failed: %v", err)
	}
	log.Printf("✅ Catalog populated: %d added, %d already present", result.Created, result.Skipped)
}
