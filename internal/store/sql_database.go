package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/inkloth/internal/logger"
	"github.com/MKhiriev/inkloth/migrations"
)

// DB is the connection pool shared by the user and blog repositories,
// together with the classifier that turns driver errors into store errors.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema up to the latest embedded goose migration.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("applying migrations failed")
		return fmt.Errorf("error applying migrations: %w", err)
	}
	db.logger.Info().Str("func", "*DB.Migrate").Msg("schema is up to date")
	return nil
}
