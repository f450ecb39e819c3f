package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/khoury-cyber-guide/backend/internal/bootstrap"
	"github.com/khoury-cyber-guide/backend/internal/config"
	"github.com/khoury-cyber-guide/backend/internal/pkg/logger"
	"github.com/khoury-cyber-guide/backend/internal/server"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "catalog",
		Short:         "Advising catalog API for the Khoury cybersecurity guide",
		SilenceUsage:  true,
		SilenceErrors: true,
		// With no subcommand the server runs
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to the YAML config file (default $CONFIG_PATH or "+config.DefaultConfigPath+")")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), configPath)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(config.ResolvePath(configPath))
			if err != nil {
				return err
			}
			return bootstrap.RunMigrations(cmd.Context(), cfg, lgr)
		},
	})

	return root
}

func serve(ctx context.Context, configPath string) error {
	srv, err := server.NewServer(ctx, config.ResolvePath(configPath))
	if err != nil {
		return err
	}
	// Run blocks until a shutdown signal arrives
	return srv.Run()
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Application exited with error")
		os.Exit(1)
	}
	logger.Info().Msg("Application finished gracefully.")
}
