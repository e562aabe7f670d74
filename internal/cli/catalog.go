package cli

import (
	"fmt"

	"estimate_agent/internal/app"

	"github.com/spf13/cobra"
)

func newSetupCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Seed system categories and question templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(a *app.App) error {
				report, err := a.Catalog.Setup(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if report.CategoriesSkipped {
					fmt.Fprintln(out, "System categories already present, skipped")
				} else {
					fmt.Fprintf(out, "Created %d system categories\n", report.CategoriesCreated)
				}
				if report.TemplatesSkipped {
					fmt.Fprintln(out, "Question templates already present, skipped")
				} else {
					fmt.Fprintf(out, "Created %d question templates\n", report.TemplatesCreated)
				}
				return nil
			})
		},
	}
}

func newEmbedCategoriesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "embed-categories",
		Short: "Embed system categories for semantic categorization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(a *app.App) error {
				n, err := a.Catalog.EmbedCategories(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Embedded %d system categories\n", n)
				return nil
			})
		},
	}
}
