// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
)

var helpDescStyle = lipgloss.NewStyle().
	Foreground(warnColor).
	Italic(true)

// StyledHelpPrinter prefixes kong's default help with a styled banner.
func StyledHelpPrinter(description string) kong.HelpPrinter {
	return func(options kong.HelpOptions, ctx *kong.Context) error {
		fmt.Fprintln(ctx.Stdout, TitleStyle.Render("audexp"))
		fmt.Fprintln(ctx.Stdout, helpDescStyle.Render(description))
		fmt.Fprintln(ctx.Stdout)

		return kong.DefaultHelpPrinter(options, ctx)
	}
}
