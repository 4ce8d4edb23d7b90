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

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/joestump/wordbook/internal/api"
	"github.com/joestump/wordbook/internal/build"
	"github.com/joestump/wordbook/internal/config"
	"github.com/joestump/wordbook/internal/db"
	"github.com/joestump/wordbook/internal/logging"
	"github.com/joestump/wordbook/internal/store"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			repo, closeRepo, err := openRepository(cfg, logger)
			if err != nil {
				return err
			}
			defer closeRepo()

			router := api.NewRouter(api.Deps{
				Languages:  repo,
				Words:      repo,
				Logger:     logger,
				CORSOrigin: cfg.CORS.Origin,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.WithFields(logrus.Fields{
					"addr":    cfg.HTTP.Addr,
					"driver":  cfg.DB.Driver,
					"version": build.Version,
				}).Info("listening")
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- fmt.Errorf("serve http: %w", err)
				}
				close(errCh)
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				logger.WithField("signal", sig.String()).Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(ctx)
			case err := <-errCh:
				return err
			}
		},
	}
}

// openRepository builds the backend named by cfg.DB.Driver. SQL backends are
// migrated before use; the returned func releases the connection pool.
func openRepository(cfg *config.Config, logger *logrus.Logger) (store.Repository, func(), error) {
	if cfg.InMemory() {
		logger.Warn("using the in-memory store; data is lost on exit")
		return store.NewMemStore(), func() {}, nil
	}

	database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(database, cfg.DB.Driver, logger); err != nil {
		_ = database.Close()
		return nil, nil, err
	}
	return store.NewSQLStore(database), func() { _ = database.Close() }, nil
}
