package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
)

// Database holds the SQL connection pool.
type Database struct {
	*sql.DB
}

// New creates, configures, and verifies a MariaDB connection pool.
// It returns an error if the DSN is invalid or pinging the database fails.
func New(cfg MariaDbConfig) (*Database, error) {
	log.Println("initialising mariadb connection pool...")

	dsn, err := normaliseDSN(cfg.DSN, cfg.MultiStatements)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		// close the connection pool before returning the ping error
		if cErr := db.Close(); cErr != nil {
			return nil, cErr
		}
		return nil, err
	}
	return &Database{db}, nil
}

// Ping satisfies port.Pinger.
func (d *Database) Ping(ctx context.Context) error {
	return d.PingContext(ctx)
}

// normaliseDSN forces parseTime so DATETIME columns scan into time.Time.
func normaliseDSN(dsn string, multiStatements bool) (string, error) {
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid MARIADB_DSN: %w", err)
	}
	c.ParseTime = true
	if multiStatements {
		c.MultiStatements = true
	}
	return c.FormatDSN(), nil
}
