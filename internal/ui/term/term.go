// Package term provides the colors, icons and termenv output shared by the
// logger and the command line.
package term

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors.
var (
	Accent = lipgloss.Color("#8B5CF6")
	Muted  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "·"
)

// Profile returns the color profile detected from the environment.
// NO_COLOR forces Ascii.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// NewOutput creates a termenv.Output writing to w with Profile applied.
// A nil w writes to os.Stderr.
func NewOutput(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile()), termenv.WithTTY(true))
}

// Paint renders s in color c on out.
func Paint(out *termenv.Output, c lipgloss.Color, s string) string {
	return out.String(s).Foreground(termenv.RGBColor(string(c))).String()
}
