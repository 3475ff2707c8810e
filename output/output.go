// Package output prints CLI messages, styled when the destination is a terminal.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Printer writes status lines to w. With color off every message is plain
// text, which keeps output stable for pipes and tests.
type Printer struct {
	w     io.Writer
	color bool
}

func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// Detect resolves a color mode (auto, always, never) for f. Auto enables
// color only when f is a terminal.
func Detect(mode string, f *os.File) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(f.Fd()))
	}
}

func (p *Printer) render(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

// Success prints a success message
func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(successStyle, "✓"), fmt.Sprintf(format, args...))
}

// Warning prints a warning message
func (p *Printer) Warning(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(warningStyle, "⚠"), fmt.Sprintf(format, args...))
}

// Error prints an error message
func (p *Printer) Error(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(errorStyle, "✗"), fmt.Sprintf(format, args...))
}

// Info prints an info message
func (p *Printer) Info(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.render(infoStyle, "ℹ"), fmt.Sprintf(format, args...))
}

// Muted prints a de-emphasized line.
func (p *Printer) Muted(format string, args ...any) {
	fmt.Fprintln(p.w, p.render(mutedStyle, fmt.Sprintf(format, args...)))
}

// Plain prints a line without any decoration.
func (p *Printer) Plain(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Section prints a header followed by an underline of the same width.
func (p *Printer) Section(title string) {
	fmt.Fprintln(p.w)
	fmt.Fprintln(p.w, p.render(primaryStyle, title))
	fmt.Fprintln(p.w, p.render(mutedStyle, strings.Repeat("═", lipgloss.Width(title))))
}

// Writer exposes the destination for tabular output.
func (p *Printer) Writer() io.Writer { return p.w }
