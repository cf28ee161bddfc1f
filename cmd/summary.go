package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielshue/notebook-automation/pkg/index"
)

var (
	// successStyle for the written count
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// lockedStyle for the skipped-as-locked count
	lockedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	// errorStyle for the failed count
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the summary box
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// printSummary renders the end-of-run counts. Every run prints this, even
// when individual directories failed.
func printSummary(s index.Summary) {
	lines := fmt.Sprintf("%s  %s  %s",
		successStyle.Render(fmt.Sprintf("✓ %d written", s.Written)),
		lockedStyle.Render(fmt.Sprintf("🔒 %d locked", s.SkippedLocked)),
		errorStyle.Render(fmt.Sprintf("✗ %d failed", s.Failed)),
	)
	fmt.Println(boxStyle.Render(lines))
}
