package main

import (
	"context"
	"fmt"

	"github.com/Sanjida-Parven-Alfe/Backend/internal/app"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/auth"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/config"
	"github.com/Sanjida-Parven-Alfe/Backend/internal/repository"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("app init: %w", err)
	}

	if err = application.Run(); err != nil {
		return fmt.Errorf("app run: %w", err)
	}

	return nil
}

func indexesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "indexes",
		Short: "Create the MongoDB indexes the API relies on",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, err := app.NewLogger(cfg)
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := repository.Connect(ctx, cfg.Mongo)
			if err != nil {
				return err
			}
			defer func() { _ = client.Disconnect(ctx) }()

			if err = repository.EnsureIndexes(ctx, client.Database(cfg.Mongo.Database)); err != nil {
				return err
			}

			log.LogAttrs(ctx, logger.InfoLevel, "indexes ensured", logger.String("database", cfg.Mongo.Database))
			return nil
		},
	}
}

func tokenCmd() *cobra.Command {
	var email, name string

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an access token for an email",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			token, err := auth.NewManager(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL).Issue(email, name)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email claim of the token")
	cmd.Flags().StringVar(&name, "name", "", "Optional name claim")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
