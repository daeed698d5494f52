package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/edgeselect/internal/adapters/dto"
	"github.com/bnema/edgeselect/internal/app"
	"github.com/bnema/edgeselect/internal/domain"
)

// newResolveCmd creates the resolve command.
func newResolveCmd(configPath *string) *cobra.Command {
	var (
		strategyFlag string
		output       string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Run one resolution round and print the selected host",
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

			strategy := kernel.Strategy()
			if cmd.Flags().Changed("strategy") {
				if strategy, err = domain.ParseStrategy(strategyFlag); err != nil {
					return err
				}
			}

			c, err := kernel.Resolve(cmd.Context(), strategy)
			if err != nil {
				return fmt.Errorf("resolve: %w", err)
			}

			resp := dto.ResolveResponse{Strategy: string(strategy)}
			cand := dto.FromCandidate(*c)
			resp.Candidate = &cand
			return render(cmd.OutOrStdout(), format, resp, func(w io.Writer) error {
				return writeResolveText(w, resp)
			})
		},
	}

	cmd.Flags().StringVar(&strategyFlag, "strategy", string(domain.DefaultStrategy),
		"Resolution strategy: first-available, priority-optimal, smart-wait or fastest-first")
	addOutputFlag(cmd, &output)

	return cmd
}

func writeResolveText(w io.Writer, resp dto.ResolveResponse) error {
	c := resp.Candidate
	if err := writeLine(w, titleStyle.Render(c.Name)+" "+mutedStyle.Render(c.Hostname)); err != nil {
		return err
	}
	return writeLine(w, renderTable(
		[]string{"Strategy", "Priority", "Protocol", "Path"},
		[][]string{{resp.Strategy, strconv.Itoa(c.Priority), c.Protocol, c.PathPrefix}},
	))
}
