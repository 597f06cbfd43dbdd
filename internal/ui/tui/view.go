package tui

import (
	"fmt"
	"strings"
	"time"
)

func renderView(m Model) string {
	var b strings.Builder

	renderHeader(&b, m)
	renderProgressBar(&b, m)
	renderKinds(&b, m)
	renderFooter(&b, m)

	return b.String()
}

func renderHeader(b *strings.Builder, m Model) {
	b.WriteString(titleStyle.Render(fmt.Sprintf("ospurge: %s", m.Project)))

	status := " "
	switch {
	case m.Err != nil:
		status += failedStyle.Render(fmt.Sprintf("Error: %v", m.Err))
	case m.Done:
		status += readyStyle.Render("Purged")
	default:
		status += activeStyle.Render(currentSpinner(m.SpinnerFrame)+" ") + warningStyle.Render("Purging")
	}
	b.WriteString(status)
	b.WriteString("\n")
}

func renderProgressBar(b *strings.Builder, m Model) {
	progress := calculateProgress(m)
	barWidth := 40
	if m.Width > 0 && m.Width < 80 {
		barWidth = max(m.Width-30, 10)
	}
	filled := min(int(float64(barWidth)*progress), barWidth)

	bar := progressBarFull.Render(strings.Repeat("█", filled)) +
		progressBarEmpty.Render(strings.Repeat("░", barWidth-filled))
	fmt.Fprintf(b, "  %s %d%%\n", bar, int(progress*100))
}

func renderKinds(b *strings.Builder, m Model) {
	b.WriteString(sectionStyle.Render("  Resources"))
	b.WriteString("\n")

	for _, row := range m.Kinds {
		icon, style := kindIcon(row, m.SpinnerFrame)
		detail := ""
		switch {
		case row.Found > 0:
			detail = fmt.Sprintf("%d/%d deleted", row.Deleted, row.Found)
		case row.Done:
			detail = "none"
		}
		if row.Tolerated > 0 {
			detail += warningStyle.Render(fmt.Sprintf("  %d in use", row.Tolerated))
		}
		fmt.Fprintf(b, "    %s %-16s %s\n", style(icon), row.Kind, dimStyle.Render(detail))
	}

	if m.ProjectDeleted {
		fmt.Fprintf(b, "    %s %-16s\n", readyStyle.Render(checkMark), "project")
	}
}

func renderFooter(b *strings.Builder, m Model) {
	parts := []string{fmt.Sprintf("elapsed: %s", formatDuration(time.Since(m.StartTime)))}
	if m.LastResource != "" && !m.Done {
		parts = append(parts, "last: "+m.LastResource)
	}
	b.WriteString(footerStyle.Render(fmt.Sprintf("  %s  |  q: quit", strings.Join(parts, "  |  "))))
	b.WriteString("\n")
}

// styleFunc is a single-string styling function.
type styleFunc func(...string) string

func kindIcon(row KindRow, frame int) (string, styleFunc) {
	switch {
	case row.Active:
		return currentSpinner(frame), activeStyle.Render
	case row.Done && row.Tolerated > 0:
		return warnMark, warningStyle.Render
	case row.Done && row.Deleted < row.Found:
		return crossMark, failedStyle.Render
	case row.Done:
		return checkMark, readyStyle.Render
	default:
		return pending, dimStyle.Render
	}
}

func calculateProgress(m Model) float64 {
	if m.Done && m.Err == nil {
		return 1.0
	}
	if len(m.Kinds) == 0 {
		return 0
	}
	done := 0
	for _, row := range m.Kinds {
		if row.Done {
			done++
		}
	}
	return float64(done) / float64(len(m.Kinds))
}

func currentSpinner(frame int) string {
	if frame < 0 {
		frame = -frame
	}
	return spinnerFrames[frame%len(spinnerFrames)]
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh%dm", int(d.Hours()), int(d.Minutes())%60)
}
