// Package server initializes and runs the application server. It opens the
// database, applies migrations, selects the media storage backend, and
// starts the HTTP server with graceful shutdown on OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/wolfdeveloper/wolfdevlovers/internal/logging"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/config"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/httpapi"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/repositories/repomanager"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/services"
	"github.com/wolfdeveloper/wolfdevlovers/internal/server/storage"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	db         *sql.DB
	httpServer *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm, err := repomanager.NewPostgresRepositoryManager()
	if err != nil {
		return nil, fmt.Errorf("repository manager error: %w", err)
	}

	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := newObjectStore(c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	ps := services.NewProfileService(db, rm, store, c)
	handlers := httpapi.NewHandlers(ps, logger)

	return &App{
		config:     c,
		logger:     logger,
		db:         db,
		httpServer: httpapi.NewServer(c.EndpointAddr, handlers, logger),
	}, nil
}

func newObjectStore(c *config.Config) (storage.ObjectStore, error) {
	switch c.StorageBackend {
	case config.StorageFile:
		return storage.NewFileStore(c.FileStorageDir)
	case config.StorageS3:
		return storage.NewS3Store(c), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", c.StorageBackend)
	}
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

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.httpServer.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
