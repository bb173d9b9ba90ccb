// Package cli - дерево команд cobra для land-catalog.
package cli

import (
	"context"
	"fmt"

	"land-catalog/internal"
	"land-catalog/internal/configs"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
}

// NewRootCmd создает корневую команду с глобальными флагами.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "land-catalog",
		Short:         "Land plot catalog service",
		Long:          "Catalog of land plots for sale with a lead quiz that issues promo codes, contacts and inquiries.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "path to .env file (default: ./.env if present)")

	root.AddCommand(
		newServeCmd(opts),
		newMigrateCmd(opts),
		newSeedCmd(opts),
	)

	return root
}

func (o *rootOptions) loadConfig() (*configs.AppConfig, error) {
	if o.envFile != "" {
		return configs.LoadConfig(o.envFile)
	}
	return configs.LoadConfig()
}

// newApp загружает конфигурацию и собирает приложение
func (o *rootOptions) newApp(ctx context.Context) (*internal.App, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}
	app, err := internal.NewApp(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return app, nil
}
