// Package report renders a purge result for humans or machines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"sigs.k8s.io/yaml"

	"github.com/imamik/ospurge/internal/purge"
)

// Formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308"))
)

// Write renders res to w in format. Styled enables terminal colors for the
// text format.
func Write(w io.Writer, res *purge.Result, format string, styled bool) error {
	switch format {
	case "", FormatText:
		return writeText(w, res, styled)
	case FormatJSON:
		return writeJSON(w, res)
	case FormatYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// JSON returns the indented JSON encoding of res.
func JSON(res *purge.Result) ([]byte, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report: %w", err)
	}
	return append(data, '\n'), nil
}

func writeJSON(w io.Writer, res *purge.Result) error {
	data, err := JSON(res)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeText(w io.Writer, res *purge.Result, styled bool) error {
	render := func(s lipgloss.Style, str string) string {
		if styled {
			return s.Render(str)
		}
		return str
	}

	if len(res.Deleted) > 0 {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"KIND", "DELETED"})
		table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
		table.SetAlignment(tablewriter.ALIGN_LEFT)
		table.SetCenterSeparator("")
		table.SetColumnSeparator("")
		table.SetRowSeparator("")
		table.SetHeaderLine(false)
		table.SetBorder(false)

		for _, kind := range purge.Order {
			n, ok := res.Deleted[kind]
			if !ok {
				continue
			}
			table.Append([]string{string(kind), strconv.Itoa(n)})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	for _, t := range res.Tolerated {
		fmt.Fprintf(w, "%s %s\n", render(warnStyle, "in use, skipped:"), t)
	}

	switch {
	case res.Failed:
		fmt.Fprintf(w, "%s %s\n", render(failStyle, "FAILED"), res.Msg)
	case res.Changed:
		fmt.Fprintf(w, "%s %s\n", render(okStyle, "OK"), res.Msg)
	default:
		fmt.Fprintln(w, res.Msg)
	}

	if res.ProjectID != "" && !res.CheckMode {
		status := "kept"
		switch {
		case res.ProjectDeleted:
			status = "deleted"
		case res.Failed:
			status = "not purged"
		}
		fmt.Fprintf(w, "project %s (%s) %s, %d resources deleted in %s\n",
			res.Project, res.ProjectID, status, res.Total(), res.Duration.Round(time.Millisecond))
	}
	return nil
}
