// Package devserver initializes and runs the development fixture server.
// It loads seed data, handles graceful shutdown, and starts the HTTP API the
// client application talks to.
package devserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexkarev/travellog/internal/devserver/config"
	"github.com/alexkarev/travellog/internal/devserver/fixtures"
	"github.com/alexkarev/travellog/internal/devserver/httpapi"
	"github.com/alexkarev/travellog/internal/devserver/store"
	"github.com/alexkarev/travellog/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

func NewApp(c *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	seed := fixtures.Default()
	if c.FixturesFile != "" {
		loaded, err := fixtures.LoadFile(c.FixturesFile)
		if err != nil {
			return nil, fmt.Errorf("fixtures init error: %w", err)
		}
		seed = loaded
	}

	st, err := store.New(seed)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	srv := &http.Server{
		Addr:    c.Addr,
		Handler: httpapi.NewServer(c, st, logger).Router(),
	}

	return &App{config: c, logger: logger, server: srv}, nil
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

	app.logger.Info(ctx, "Starting fixture server...", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, err.Error())
	}

	wg.Wait()
	app.logger.Info(context.Background(), "Fixture server stopped")
}
