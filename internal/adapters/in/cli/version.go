package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// Build metadata, injected through -ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// SetVersionInfo records the build metadata reported by the version command.
func SetVersionInfo(version, commit, date string) {
	Version = version
	Commit = commit
	BuildDate = date
}

type versionInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
}

func newVersionCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			info := versionInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}
			return render(cmd.OutOrStdout(), format, info, func(w io.Writer) error {
				return writeLine(w, titleStyle.Render("edgeselect "+info.Version)+
					mutedStyle.Render(" ("+info.Commit+", built "+info.BuildDate+")"))
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}
