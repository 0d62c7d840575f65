package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"manufacturing/cmd"
	"manufacturing/internal/adapters/out/postgres"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("application stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	gormDB, err := gorm.Open(pgdriver.Open(configs.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("close event sinks", "error", closeErr)
		}
	}()

	jobManager, err := app.CreateJobManager()
	if err != nil {
		return fmt.Errorf("create jobs: %w", err)
	}
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e, err := app.CreateRouter()
	if err != nil {
		return fmt.Errorf("create router: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return startWebServer(ctx, e, configs.HTTPPort, logger)
}

func startWebServer(ctx context.Context, e *echo.Echo, port string, logger *slog.Logger) error {
	e.Logger.SetLevel(log.INFO)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "port", port)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", port))
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
