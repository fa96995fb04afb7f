// Package output provides styled terminal output helpers (success, error,
// warning) using lipgloss.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	// Styles
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var out io.Writer = os.Stdout

// SetWriter redirects all output helpers to w.
func SetWriter(w io.Writer) {
	out = w
}

// Writer returns the current destination.
func Writer() io.Writer {
	return out
}

// styled reports whether the destination is an interactive terminal.
func styled() bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func render(style lipgloss.Style, s string) string {
	if !styled() {
		return s
	}
	return style.Render(s)
}

// Success prints a success message
func Success(format string, args ...interface{}) {
	fmt.Fprintln(out, render(successStyle, fmt.Sprintf(format, args...)))
}

// Error prints an error message
func Error(format string, args ...interface{}) {
	fmt.Fprintln(out, render(errorStyle, "ERROR: "+fmt.Sprintf(format, args...)))
}

// Warning prints a warning message
func Warning(format string, args ...interface{}) {
	fmt.Fprintln(out, render(warningStyle, "Warning: "+fmt.Sprintf(format, args...)))
}

// Info prints an info message
func Info(format string, args ...interface{}) {
	fmt.Fprintln(out, fmt.Sprintf(format, args...))
}

// Subtle renders s dimmed when styling is on.
func Subtle(s string) string {
	return render(subtleStyle, s)
}

// Raw writes b followed by a newline.
func Raw(b []byte) {
	fmt.Fprintln(out, string(b))
}

// JSON outputs data as JSON
func JSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(data))
	return nil
}

// FormatTimeAgo returns a human-readable time difference
func FormatTimeAgo(t time.Time) string {
	return formatTimeAgo(t, time.Now())
}

func formatTimeAgo(t, now time.Time) string {
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return "in the future"
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}
