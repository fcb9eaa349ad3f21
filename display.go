package renamer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	foundStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("81"))
	renamedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("197"))
)

// RenderPlan echoes the effective settings before the user is asked to
// confirm them.
func RenderPlan(location, find, replace string, c *CLIConfig) string {
	var b strings.Builder
	b.WriteString("\n" + headerStyle.Render("Plan:") + "\n")

	row := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %-15s: %s\n", label, value))
	}
	if c.FindOnly {
		replace = "(ignored in --find-only)"
	} else {
		replace = fmt.Sprintf("%q", replace)
	}
	row("Location", location)
	row("Find term", fmt.Sprintf("%q", find))
	row("Replace with", replace)
	row("Case-sensitive", yesNo(c.CaseSensitive))
	row("Regex mode", yesNo(c.Regex))
	row("Include dirs", yesNo(c.IncludeDirs))
	row("Dry-run", yesNo(c.DryRun))
	row("Backup copies", yesNo(c.Backup))
	row("JSON log", yesNo(c.JSONLog))
	if exts := NormalizeExtensions(c.Extensions); len(exts) > 0 {
		row("Extensions", strings.Join(exts, ", "))
	} else {
		row("Extensions", "(all)")
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// FormatSummary renders the run result for the console.
func FormatSummary(s Summary) string {
	var b strings.Builder
	if s.Message != "" {
		b.WriteString(headerStyle.Render(s.Message) + "\n")
	}

	renderList := func(title string, style lipgloss.Style, list []string) {
		if len(list) == 0 {
			return
		}
		b.WriteString(style.Render(title) + "\n")
		for _, f := range list {
			b.WriteString(fmt.Sprintf("  %s\n", f))
		}
	}

	renderList("Matched:", foundStyle, s.Found)
	renderList("Renamed:", renamedStyle, s.Renamed)
	renderList("Failed:", errorStyle, s.Failed)

	b.WriteString(summaryStyle.Render(fmt.Sprintf(
		"Total found: %d  Renamed: %d  Skipped: %d", s.Counts.Found, s.Counts.Renamed, s.Counts.Skipped)) + "\n")

	if s.TextLog != "" {
		b.WriteString(fmt.Sprintf("Detailed log written to: %s\n", s.TextLog))
	}
	if s.JSONLog != "" {
		b.WriteString(fmt.Sprintf("JSON log written to: %s\n", s.JSONLog))
	}
	return b.String()
}

func newProgressBar() *progressbar.ProgressBar {
	return progressbar.Default(-1, "Renaming")
}
