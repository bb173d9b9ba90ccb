package cli

import (
	"github.com/spf13/cobra"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var migrate, seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API",
		Long:  "Start the HTTP API server and block until SIGINT/SIGTERM.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.newApp(ctx)
			if err != nil {
				return err
			}
			if migrate {
				if err := app.Migrate(ctx); err != nil {
					app.Close()
					return err
				}
			}
			if seed {
				if err := app.Seed(ctx); err != nil {
					app.Close()
					return err
				}
			}
			return app.Run()
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "create the database schema before serving")
	cmd.Flags().BoolVar(&seed, "seed", false, "load demo data before serving")

	return cmd
}
