package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// outputFormat selects how read commands print their result.
type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", outputText:
		return outputText, nil
	case outputJSON, outputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (text, json, yaml)", s)
	}
}

func addOutputFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "output", "o", string(outputText), "Output format: text, json or yaml")
}

var (
	colorSuccess = lipgloss.Color("#00ff88")
	colorError   = lipgloss.Color("#ff4444")
	colorMuted   = lipgloss.Color("#737373")
	colorBorder  = lipgloss.Color("#404040")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorSuccess).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format outputFormat, v any, text func(io.Writer) error) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

func renderStatus(ok bool) string {
	if ok {
		return successStyle.Render("ok")
	}
	return errorStyle.Render("failed")
}

func writeLine(w io.Writer, msg string) error {
	_, err := fmt.Fprintln(w, msg)
	return err
}
