// Command admin provisions the admin account out of band:
//
//	go run ./cmd/admin -email owner@example.com -password secret
package main

import (
	"flag"
	"log"

	"looncamp-backend/config"
)

func main() {
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("❌ -email and -password are required")
	}

	cfg := config.Load()
	cfg.AdminEmail, cfg.AdminPassword = "", ""

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}

	created, err := config.UpsertAdmin(db, *email, *password)
	if err != nil {
		log.Fatalf("❌ Provisioning admin failed: %v", err)
	}
	if created {
		log.Printf("✅ Admin %s created", *email)
	} else {
		log.Printf("✅ Admin %s password updated", *email)
	}
}
