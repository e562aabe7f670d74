package cli

import (
	"estimate_agent/internal/adapter/http/routes"
	"estimate_agent/internal/app"

	"github.com/spf13/cobra"
)

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(a *app.App) error {
				return routes.Run(cmd.Context(), a)
			})
		},
	}
}
