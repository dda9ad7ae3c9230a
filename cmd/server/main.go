// Package main implements the entry point for the todo-myapp API server,
// which backs a personal task tracker: user-owned categories and tasks with
// client-rearrangeable display order.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rasupy/todo-myapp/internal/config"
	"github.com/rasupy/todo-myapp/internal/platform/logger"
	"github.com/rasupy/todo-myapp/internal/platform/postgres"
	"github.com/rasupy/todo-myapp/internal/service/auth"
	"github.com/rasupy/todo-myapp/internal/service/ordering"
	"github.com/rasupy/todo-myapp/internal/store"
)

// application bundles the server's long-lived dependencies.
type application struct {
	config          *config.Config
	logger          *slog.Logger
	db              *sql.DB
	userStore       store.UserStore
	categoryService *ordering.CategoryService
	taskService     *ordering.TaskService
	passwordHasher  auth.PasswordHasher
	passwordVerify  auth.PasswordVerifier
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg, appLogger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := postgres.RunMigrations(ctx, db, appLogger); err != nil {
		return err
	}

	app := newApplication(cfg, appLogger, db)
	return app.serve(ctx)
}

func newApplication(cfg *config.Config, appLogger *slog.Logger, db *sql.DB) *application {
	txm := store.NewTransactionManager(db)
	categoryStore := postgres.NewPostgresCategoryStore(db, appLogger)
	taskStore := postgres.NewPostgresTaskStore(db, appLogger)
	userStore := postgres.NewPostgresUserStore(db, appLogger)

	return &application{
		config:          cfg,
		logger:          appLogger,
		db:              db,
		userStore:       userStore,
		categoryService: ordering.NewCategoryService(txm, categoryStore, appLogger),
		taskService:     ordering.NewTaskService(txm, taskStore, categoryStore, appLogger),
		passwordHasher:  auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		passwordVerify:  auth.NewBcryptVerifier(),
	}
}

// serve starts the HTTP server and blocks until the context is canceled or
// the listener fails, then drains in-flight requests.
func (app *application) serve(ctx context.Context) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           app.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info("starting server", "port", app.config.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
		app.logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	app.logger.Info("server shutdown completed")
	return nil
}
