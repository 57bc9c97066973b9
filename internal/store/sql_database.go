package store

import (
	"database/sql"

	"github.com/MKhiriev/go-quest-client/internal/logger"
	"github.com/MKhiriev/go-quest-client/migrations"
)

// DB is the process-wide cache database handle. It is opened once at
// startup and shared by every repository; tests open an isolated instance
// per test.
type DB struct {
	*sql.DB
	changes *changeBroker
	logger  *logger.Logger
}

func newDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: conn, changes: newChangeBroker(), logger: log}
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
