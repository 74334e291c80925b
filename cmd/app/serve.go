package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fleet/api"
	"fleet/cmd"
	httpin "fleet/internal/adapters/in/http"
	"fleet/internal/adapters/out/postgres"

	"github.com/urfave/cli/v2"
)

const shutdownTimeout = 10 * time.Second

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "apply migrations and start the HTTP API and the capacity audit job",
		Action: func(c *cli.Context) error {
			config, err := cmd.LoadConfig()
			if err != nil {
				return err
			}
			return serve(c.Context, config)
		},
	}
}

func serve(ctx context.Context, config cmd.Config) error {
	logger, err := config.NewLogger(os.Stdout)
	if err != nil {
		return err
	}

	applied, err := postgres.Migrate(config.DSN())
	if err != nil {
		return err
	}
	logger.Info("database schema is up to date", "migrated", applied)

	db, err := postgres.Open(config.DSN())
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sqlDB.Close(); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
	}()

	publisher, closePublisher, err := cmd.NewEventPublisher(config, logger)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closePublisher(); closeErr != nil {
			logger.Error("failed to close event publisher", "error", closeErr)
		}
	}()

	root := cmd.NewCompositionRoot(config, db, publisher, logger)

	doc, err := api.Load()
	if err != nil {
		return err
	}
	auth, err := httpin.NewTokenAuthenticator(config.JWTSecret)
	if err != nil {
		return fmt.Errorf("JWT_SECRET: %w", err)
	}
	e, err := httpin.NewRouter(httpin.NewServer(root.UseCases(), logger), auth, doc, logger)
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "port", config.HTTPPort)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)); !errors.Is(startErr, http.ErrServerClosed) {
			serverErr <- startErr
		}
		close(serverErr)
	}()

	select {
	case err = <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
