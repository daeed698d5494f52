// Package cli exposes resolution and probing as cobra commands.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the edgeselect command tree. Every subcommand shares the
// --config flag.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "edgeselect",
		Short: "Pick a reachable delivery host for the game catalog",
		Long: `edgeselect discovers candidate delivery hosts, challenges each one for
reachability and keeps the best reachable host bound for asset requests.

Run "edgeselect serve" for the long-lived daemon, or use resolve, probe and
candidates for a single round from the terminal.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: edgeselect.toml in the search path)")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newResolveCmd(&configPath),
		newProbeCmd(&configPath),
		newCandidatesCmd(&configPath),
		newVersionCmd(),
	)

	return rootCmd
}
