package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// messagesTable is the table the migrations create.
const messagesTable = "error_messages"

// RunMigrations brings the error_messages schema up to date. Migrations are
// read from migrationsPath, or from the copy embedded in the binary when the
// path is empty.
func RunMigrations(dsn string, migrationsPath string) error {
	m, src, err := newMigrate(dsn, migrationsPath)
	if err != nil {
		return fmt.Errorf("migration init (%s): %w", src, err)
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up (%s): %w", src, err)
	}

	version, dirty, _ := m.Version()
	log.WithFields(logrus.Fields{
		"table":   messagesTable,
		"source":  src,
		"version": version,
		"dirty":   dirty,
		"changed": err == nil,
	}).Info("message schema ready")
	return nil
}

func newMigrate(dsn, migrationsPath string) (*migrate.Migrate, string, error) {
	if migrationsPath != "" {
		src := fmt.Sprintf("file://%s", migrationsPath)
		m, err := migrate.New(src, dsn)
		return m, src, err
	}
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, "embedded", err
	}
	m, err := migrate.NewWithSourceInstance("iofs", d, dsn)
	return m, "embedded", err
}
