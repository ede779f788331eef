package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/config"
)

// newRootCmd собирает дерево команд. Без подкоманды запускается serve.
func newRootCmd(logger *zap.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "shortener",
		Short:         "URL shortener with API keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, logger)
		},
	}
	config.BindFlags(root.PersistentFlags())

	root.AddCommand(
		newServeCmd(logger),
		newMigrateCmd(logger),
		newUserCmd(logger),
	)
	return root
}
