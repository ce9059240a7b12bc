// Package migration applies the embedded schema to PostgreSQL.
package migration

import (
	"database/sql"
	"embed"
	"io/fs"

	"opencircle/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Files returns the embedded migration files.
func Files() (fs.FS, error) {
	return fs.Sub(embeddedMigrations, migrationsDir)
}

// Run applies every pending up migration. table names the bookkeeping table;
// empty keeps the driver default.
func Run(db *sql.DB, table string) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	sub, err := Files()
	if err != nil {
		return errors.Wrap(err, "open migrations")
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return errors.Wrap(err, "create migration source")
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{MigrationsTable: table})
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}

	migrator, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}
	// migrator.Close would close the shared *sql.DB.

	return nil
}
