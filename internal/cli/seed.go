package cli

import (
	"github.com/spf13/cobra"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo plots, quiz questions and contacts",
		Long:  "Load demo data. Plots and questions are upserted by fixed IDs, so running seed twice is safe.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.newApp(ctx)
			if err != nil {
				return err
			}
			defer app.Close()
			if migrate {
				if err := app.Migrate(ctx); err != nil {
					return err
				}
			}
			return app.Seed(ctx)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", true, "create the database schema before seeding")

	return cmd
}
