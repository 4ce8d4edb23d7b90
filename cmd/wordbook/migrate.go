package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/joestump/wordbook/internal/config"
	"github.com/joestump/wordbook/internal/db"
	"github.com/joestump/wordbook/internal/logging"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.InMemory() {
				return errors.New("the memory driver has no schema to migrate")
			}

			logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			database, err := db.New(cfg.DB.Driver, cfg.DB.DSN)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close() }()

			if err := db.Migrate(database, cfg.DB.Driver, logger); err != nil {
				return err
			}

			logger.WithField("driver", cfg.DB.Driver).Info("migrations complete")
			return nil
		},
	}
}
