// SPDX-License-Identifier: EPL-2.0

// Package cli holds the lipgloss styles and printers of the audexp
// command.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	primaryColor = lipgloss.Color("#2E86AB")
	warnColor    = lipgloss.Color("#F18F01")
	failColor    = lipgloss.Color("#C73E1D")
	okColor      = lipgloss.Color("#3BB273")
	mutedColor   = lipgloss.Color("#888888")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(failColor)

	KeyStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	OKStyle   = lipgloss.NewStyle().Foreground(okColor)
	SkipStyle = lipgloss.NewStyle().Foreground(warnColor)
	FailStyle = lipgloss.NewStyle().Foreground(failColor)
)

func PrintVersion(w io.Writer, version string) {
	fmt.Fprintln(w, TitleStyle.Render("audexp"))
	PrintField(w, "Version:", version)
}

func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintField prints one "key value" line.
func PrintField(w io.Writer, key string, value any) {
	fmt.Fprintf(w, "%s %s\n", KeyStyle.Render(key), ValueStyle.Render(fmt.Sprint(value)))
}
