package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/edgeselect/internal/adapters/dto"
	"github.com/bnema/edgeselect/internal/app"
)

// newCandidatesCmd creates the candidates command.
func newCandidatesCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "candidates",
		Short: "List discovered delivery hosts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}

			kernel, err := app.NewKernel(*configPath)
			if err != nil {
				return err
			}
			defer kernel.Close()

			cands, err := kernel.Candidates(cmd.Context())
			if err != nil {
				return err
			}

			resp := dto.CandidatesResponse{Candidates: dto.FromCandidates(cands)}
			return render(cmd.OutOrStdout(), format, resp, func(w io.Writer) error {
				return writeCandidatesText(w, resp.Candidates)
			})
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func writeCandidatesText(w io.Writer, cands []dto.Candidate) error {
	if len(cands) == 0 {
		return writeLine(w, mutedStyle.Render("No candidates discovered."))
	}

	rows := make([][]string, 0, len(cands))
	for _, c := range cands {
		rows = append(rows, []string{
			strconv.Itoa(c.Priority),
			c.Name,
			c.Hostname,
			c.PathPrefix,
			c.Protocol,
			c.Source,
		})
	}
	return writeLine(w, renderTable([]string{"Priority", "Name", "Host", "Path", "Protocol", "Source"}, rows))
}
