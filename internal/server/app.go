// Package server initializes and runs the TalentConnect backend. It wires
// storage, the event publisher, and the verification code store according
// to configuration, runs database migrations, and serves the HTTP API with
// graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/srstalent/talentconnect/internal/logging"
	"github.com/srstalent/talentconnect/internal/server/api"
	"github.com/srstalent/talentconnect/internal/server/config"
	"github.com/srstalent/talentconnect/internal/server/queue"
	"github.com/srstalent/talentconnect/internal/server/repositories/repomanager"
	"github.com/srstalent/talentconnect/internal/server/services"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	db        *sql.DB
	manager   repomanager.RepositoryManager
	publisher queue.Publisher
	codeStore services.CodeStore
	router    http.Handler
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {

	app := &App{config: cfg, logger: logger}

	// Empty DSN selects the in-memory stores with a seeded catalog, which
	// keeps single-binary demo runs free of external services.
	if cfg.DatabaseDSN == "" {
		app.manager = repomanager.NewInMemoryRepositoryManager(SeedJobs(), SeedCourses())
	} else {
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.db = db
		app.manager = repomanager.NewPostgresRepositoryManager()
	}

	if cfg.AmqpURL == "" {
		app.publisher = queue.NewNoop()
	} else {
		pub, err := queue.NewRabbit(cfg.AmqpURL, queue.Exchange)
		if err != nil {
			return nil, fmt.Errorf("amqp init error: %w", err)
		}
		app.publisher = pub
	}

	if cfg.RedisAddr == "" {
		app.codeStore = services.NewInMemoryCodeStore(nil)
	} else {
		app.codeStore = services.NewRedisCodeStore(cfg.RedisAddr)
	}

	userService := services.NewUserService(app.db, app.manager, app.publisher, cfg)
	verificationService := services.NewVerificationService(app.codeStore, app.publisher, cfg.CodeTTL)
	listingService := services.NewListingService(app.db, app.manager)
	storageService := services.NewStorageService(cfg)

	handler := api.NewHandler(userService, verificationService, listingService, storageService, logger)
	app.router = api.NewRouter(handler)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	if app.db != nil {
		if err := app.manager.RunMigrations(ctx, app.db); err != nil {
			return fmt.Errorf("migration error: %w", err)
		}
	}

	srv := &http.Server{
		Addr:    app.config.EndpointAddr,
		Handler: app.router,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting server", "addr", app.config.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "server shutdown error", "error", err)
	}

	app.Close()
	return nil
}

// Close releases external resources: broker connection, code store, DB.
func (app *App) Close() {
	if app.publisher != nil {
		_ = app.publisher.Close()
	}
	if closer, ok := app.codeStore.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
	if app.db != nil {
		_ = app.db.Close()
	}
}
