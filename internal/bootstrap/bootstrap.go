// Package bootstrap wires configuration, catalog, message tables and the
// optional override store for the command-line front-ends.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"scerr/internal/application"
	"scerr/internal/config"
	"scerr/internal/domain/entities"
	"scerr/internal/infrastructure/catalog"
	"scerr/internal/infrastructure/database"
	"scerr/internal/infrastructure/i18n"
)

var log = logrus.WithField("subsys", "bootstrap")

// Runtime holds the loaded resources. Close releases the database pool.
type Runtime struct {
	Config  *config.Config
	Catalog *entities.Catalog
	Tables  *i18n.Tables
	Pool    *pgxpool.Pool
}

// Open loads everything the formatter needs before the first call. When
// DATABASE_URL is set the override schema is migrated and its rows are
// applied to the tables.
func Open(ctx context.Context, cfg *config.Config) (*Runtime, error) {
	c, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	tables, err := i18n.NewTables(cfg.Locale, c)
	if err != nil {
		return nil, err
	}
	if cfg.MessagesDir != "" {
		if err := tables.LoadDir(cfg.MessagesDir); err != nil {
			return nil, err
		}
	}

	rt := &Runtime{Config: cfg, Catalog: c, Tables: tables}
	if cfg.DatabaseURL == "" {
		return rt, nil
	}

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("prepare message overrides: %w", err)
	}
	rt.Pool, err = database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	n, err := rt.Messages().LoadOverrides(ctx, tables)
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("load message overrides: %w", err)
	}
	log.WithField("count", n).Debug("overrides loaded")
	return rt, nil
}

// Messages returns the override service; it requires a database.
func (r *Runtime) Messages() *application.MessageService {
	return application.NewMessageService(database.NewMessageRepository(r.Pool))
}

// Formatter returns a formatter bound to locale.
func (r *Runtime) Formatter(locale string) *application.Formatter {
	if locale == "" {
		locale = r.Config.Locale
	}
	return application.NewFormatter(r.Tables.Table(locale))
}

// Describe returns the describe use case.
func (r *Runtime) Describe() *application.DescribeService {
	return application.NewDescribeService(r.Catalog, r.Tables, r.Config.Capacity)
}

func (r *Runtime) Close() {
	if r.Pool != nil {
		r.Pool.Close()
	}
}
