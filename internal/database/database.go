package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" driver used below.
	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	// TranslateError maps driver unique-violation errors to
	// gorm.ErrDuplicatedKey on both drivers; the payment repository's
	// idempotency check depends on it.
	cfg := &gorm.Config{TranslateError: true}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), cfg)
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		cfg,
	)
}
