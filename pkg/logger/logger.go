// Package logger provides the leveled, colour-coded console output used by the
// client. It sits on top of a standard *log.Logger so the destination can be
// swapped (for example into the interactive TUI).
package logger

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
)

const DefaultPrefix = "[BOMBER]"

var (
	prefixStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	debugStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	greenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	redStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	blueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

type Logger struct {
	*log.Logger
	prefix  string
	verbose bool
}

// New creates a logger writing to w. Debug lines are only emitted when verbose is set.
func New(w io.Writer, verbose bool) *Logger {
	return &Logger{
		Logger:  log.New(w, "", log.LstdFlags),
		prefix:  DefaultPrefix,
		verbose: verbose,
	}
}

// Default logs to stdout without debug output.
func Default() *Logger {
	return New(os.Stdout, false)
}

// Discard drops everything. Used in tests.
func Discard() *Logger {
	return New(io.Discard, true)
}

func (l *Logger) SetVerbose(v bool) { l.verbose = v }

func (l *Logger) Verbose() bool { return l.verbose }

func (l *Logger) print(level string, style lipgloss.Style, format string, a ...any) {
	levelTag := style.Render(fmt.Sprintf("[%-7s]", level))
	prefixStr := ""
	if l.prefix != "" {
		prefixStr = prefixStyle.Render(l.prefix) + " "
	}
	l.Printf("%s %s%s", levelTag, prefixStr, fmt.Sprintf(format, a...))
}

func (l *Logger) Success(format string, a ...any) {
	l.print("SUCCESS", successStyle, format, a...)
}

func (l *Logger) Info(format string, a ...any) {
	l.print("INFO", infoStyle, format, a...)
}

func (l *Logger) Warn(format string, a ...any) {
	l.print("WARN", warnStyle, format, a...)
}

func (l *Logger) Error(format string, a ...any) {
	l.print("ERROR", errorStyle, format, a...)
}

func (l *Logger) Debug(format string, a ...any) {
	if !l.verbose {
		return
	}
	l.print("DEBUG", debugStyle, format, a...)
}

// Green colours a message fragment for inline use.
func Green(format string, a ...any) string {
	return greenStyle.Render(fmt.Sprintf(format, a...))
}

func Red(format string, a ...any) string {
	return redStyle.Render(fmt.Sprintf(format, a...))
}

func Blue(format string, a ...any) string {
	return blueStyle.Render(fmt.Sprintf(format, a...))
}
