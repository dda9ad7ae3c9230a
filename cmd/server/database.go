package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Register the pgx database/sql driver.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/rasupy/todo-myapp/internal/config"
)

const (
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// openDatabase opens the connection pool and waits for the database to
// answer pings, retrying per the configured schedule. Containerized
// deployments often start the server before the database is ready to
// accept connections.
func openDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)

	backoff := cfg.Database.ConnectBackoff
	var pingErr error
	for attempt := 1; attempt <= cfg.Database.ConnectRetries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		pingErr = db.PingContext(pingCtx)
		cancel()
		if pingErr == nil {
			log.Info("database connection established", "attempt", attempt)
			return db, nil
		}

		log.Warn("database not ready, retrying",
			"attempt", attempt,
			"max_attempts", cfg.Database.ConnectRetries,
			"backoff", backoff.String(),
			"error", pingErr)

		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, fmt.Errorf("database connection canceled: %w", ctx.Err())
		case <-time.After(backoff):
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", cfg.Database.ConnectRetries, pingErr)
}
