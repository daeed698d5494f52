package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/edgeselect/internal/app"
)

// newServeCmd creates the serve command.
func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the selection server",
		Long: `Start the selection API, the embed relay and the background
revalidator. The first resolution round starts immediately.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), *configPath, Version)
		},
	}
}
