// Package display formats the live tick line, warnings and the final
// summary for the terminal. Rendering to the screen is the caller's job.
package display

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"clock-watch/internal/api"
	"clock-watch/internal/orgclock"
)

var (
	elapsedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	totalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("14"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true)

	summaryStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))
)

// Renderer formats display strings. Styling is dropped when the output
// is not a terminal or when colors are disabled by configuration.
type Renderer struct {
	styled     bool
	timeFormat string
}

// NewRenderer creates a renderer. colorEnabled comes from configuration;
// styling additionally requires stdout to be a TTY.
func NewRenderer(colorEnabled bool, timeFormat string) *Renderer {
	return &Renderer{
		styled:     colorEnabled && isatty.IsTerminal(os.Stdout.Fd()),
		timeFormat: timeFormat,
	}
}

// NewPlainRenderer creates a renderer that never styles, for tests and
// non-interactive output.
func NewPlainRenderer(timeFormat string) *Renderer {
	return &Renderer{
		timeFormat: timeFormat,
	}
}

// Banner formats the startup line showing the current wall-clock time.
func (r *Renderer) Banner(now time.Time) string {
	text := fmt.Sprintf("Current time: %s", now.Format(r.timeFormat))
	return r.style(bannerStyle, text)
}

// TickLine formats one refresh of the live display: the elapsed session
// duration and the running accumulated total.
func (r *Renderer) TickLine(elapsed, total orgclock.Duration) string {
	return fmt.Sprintf("elapsed %s | total %s",
		r.style(elapsedStyle, elapsed.String()),
		r.style(totalStyle, total.String()))
}

// PausedLine formats one refresh of the live display while the session
// is paused.
func (r *Renderer) PausedLine(total orgclock.Duration) string {
	return fmt.Sprintf("paused | total %s", r.style(totalStyle, total.String()))
}

// Summary formats the final shutdown summary.
func (r *Renderer) Summary(s *api.Summary) string {
	text := fmt.Sprintf("Total clocked time: %s across %d entries", s.Total.String(), s.Count)
	if s.Warnings > 0 {
		text += fmt.Sprintf(" (%d warnings)", s.Warnings)
	}
	if s.AutoClosed {
		text += " [session auto-closed]"
	}
	return r.style(summaryStyle, text)
}

func (r *Renderer) style(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}
