// Package pretty provides Lipgloss-based styled output for parse trees
// and token streams.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// defaultTermWidth is used when the writer is not a terminal.
const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Tree components
	NodeKind   lipgloss.Style
	NodeDetail lipgloss.Style
	NodeValue  lipgloss.Style
	Branch     lipgloss.Style

	// Token components
	TokenKind lipgloss.Style
	TokenText lipgloss.Style
	Offset    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		NodeKind:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		NodeDetail: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		NodeValue:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Branch:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		TokenKind: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		TokenText: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Offset:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		NodeKind:   plain,
		NodeDetail: plain,
		NodeValue:  plain,
		Branch:     plain,
		TokenKind:  plain,
		TokenText:  plain,
		Offset:     plain,
		Dim:        plain,
		Bold:       plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the column width of the writer's terminal, or a
// sensible default when the writer is not one.
func TerminalWidth(writer io.Writer) int {
	if f, ok := writer.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return defaultTermWidth
}
