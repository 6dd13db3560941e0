// Package database manages a PostgreSQL connection pool over database/sql
// using the pgx stdlib driver, and applies embedded schema migrations.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/JaimeStill/shows-api/pkg/lifecycle"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// ErrNotReady is returned when the pool is used before Start succeeds.
var ErrNotReady = errors.New("database not ready")

// System owns the connection pool.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Migrate(migrations fs.FS, dir string) error
}

type database struct {
	cfg    *Config
	db     *sql.DB
	logger *slog.Logger
	ready  bool
}

// New opens the pool without connecting; Start verifies connectivity.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		cfg:    cfg,
		db:     db,
		logger: logger.With("system", "database"),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.db
}

// Start pings the server within the configured timeout and closes the pool on shutdown.
func (d *database) Start(lc *lifecycle.Coordinator) error {
	d.logger.Info("starting database system", "host", d.cfg.Host, "name", d.cfg.Name)

	ctx, cancel := context.WithTimeout(lc.Context(), d.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := d.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	d.ready = true

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.logger.Info("closing database connection")
		if err := d.db.Close(); err != nil {
			d.logger.Error("database close error", "error", err)
		}
	})

	return nil
}

// Migrate applies every pending up migration found in dir of migrations.
func (d *database) Migrate(migrations fs.FS, dir string) error {
	if !d.ready {
		return ErrNotReady
	}

	src, err := iofs.New(migrations, dir)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, d.cfg.URL("pgx5"))
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}

	version, dirty, _ := m.Version()
	d.logger.Info("schema migrated", "version", version, "dirty", dirty)
	return nil
}
