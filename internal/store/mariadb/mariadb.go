// Package mariadb implements the record store on MariaDB/MySQL for
// deployments without a Postgres instance (STORE_DRIVER=mysql).
package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/yourhome24/expose/internal/config"
)

// Store holds a MariaDB connection pool.
type Store struct {
	db *sql.DB
}

// New opens a connection pool, verifies connectivity and ensures the schema
// exists.
func New(cfg *config.StoreConfig) (*Store, error) {
	if cfg.URL == "" {
		return nil, errors.New("MariaDB DSN is required")
	}

	db, err := sql.Open("mysql", withParseTime(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to open MariaDB: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping MariaDB: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}
	return s, nil
}

// withParseTime appends parseTime=true so TIMESTAMP columns scan into
// time.Time.
func withParseTime(dsn string) string {
	if strings.Contains(dsn, "?") {
		return dsn + "&parseTime=true"
	}
	return dsn + "?parseTime=true"
}

func (s *Store) ensureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS descriptions (
			id CHAR(36) PRIMARY KEY,
			created_at TIMESTAMP(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
			payload JSON NOT NULL,
			text TEXT NOT NULL,
			INDEX idx_descriptions_created_at (created_at DESC)
		)
	`)
	if err != nil {
		return fmt.Errorf("create descriptions table: %w", err)
	}
	return nil
}

// Ping verifies the connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging MariaDB: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("closing database connection: %w", err)
		}
	}
	return nil
}
