package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/config"
	"github.com/Totarae/shortlink/internal/database"
)

var errNoDSN = errors.New("DATABASE_DSN is not set")

func newMigrateCmd(logger *zap.Logger) *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply (or roll back one step of) database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.DatabaseDSN == "" {
				return errNoDSN
			}
			if down {
				return database.MigrateDown(cfg.DatabaseDSN, logger)
			}
			return database.MigrateUp(cfg.DatabaseDSN, logger)
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "roll back the last migration")
	return cmd
}
