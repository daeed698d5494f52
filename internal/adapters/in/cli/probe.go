package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/edgeselect/internal/adapters/dto"
	"github.com/bnema/edgeselect/internal/app"
)

// newProbeCmd creates the probe command.
func newProbeCmd(configPath *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "probe <hostname>...",
		Short: "Probe one or more hosts and print the results",
		Long: `Probe runs the reachability challenge against each hostname. Hosts
listed by discovery keep their configured path and protocol; other hosts
are probed over https. Exits non-zero when any probe fails.`,
		Args: cobra.MinimumNArgs(1),
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

			results, err := kernel.Probe(cmd.Context(), args)
			if err != nil {
				return err
			}

			resp := dto.ProbesResponse{Probes: dto.FromProbeResults(results)}
			if err := render(cmd.OutOrStdout(), format, resp, func(w io.Writer) error {
				return writeProbesText(w, resp.Probes)
			}); err != nil {
				return err
			}

			if failed := countFailed(resp.Probes); failed > 0 {
				return fmt.Errorf("%d of %d probes failed", failed, len(resp.Probes))
			}
			return nil
		},
	}

	addOutputFlag(cmd, &output)
	return cmd
}

func countFailed(probes []dto.ProbeResult) int {
	n := 0
	for _, p := range probes {
		if !p.Success {
			n++
		}
	}
	return n
}

func writeProbesText(w io.Writer, probes []dto.ProbeResult) error {
	rows := make([][]string, 0, len(probes))
	for _, p := range probes {
		reason := p.Reason
		if p.Detail != "" {
			reason += ": " + p.Detail
		}
		rows = append(rows, []string{
			p.Hostname,
			renderStatus(p.Success),
			strconv.Itoa(p.Stage),
			reason,
			strconv.FormatInt(p.LatencyMs, 10) + "ms",
		})
	}
	return writeLine(w, renderTable([]string{"Host", "Result", "Stage", "Reason", "Latency"}, rows))
}
