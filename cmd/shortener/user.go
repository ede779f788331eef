package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Totarae/shortlink/internal/config"
	"github.com/Totarae/shortlink/internal/model"
	"github.com/Totarae/shortlink/internal/service"
	"github.com/Totarae/shortlink/internal/validation"
)

func newUserCmd(logger *zap.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users",
	}
	cmd.AddCommand(newUserCreateCmd(logger))
	return cmd
}

func newUserCreateCmd(logger *zap.Logger) *cobra.Command {
	var email, name, tier string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user and print its API key",
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := model.SignupRequest{Email: email}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			t := model.Tier(tier)
			req.Tier = &t

			if err := validation.New().Struct(req); err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Mode == config.ModeMemory {
				logger.Warn("DATABASE_DSN не задан, пользователь будет создан в памяти и потерян")
			}

			store, err := openStore(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			user, err := service.NewUserService(store, logger).Signup(cmd.Context(), req)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "id=%d email=%s tier=%s api_key=%s\n",
				user.ID, user.Email, user.Tier, user.APIKey)
			return err
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "user email")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&tier, "tier", string(model.TierHobby), "hobby or enterprise")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
