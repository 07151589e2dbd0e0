// Package printer renders diagnostics on stderr. Stdout is reserved for the
// version output so that it can be piped into files such as $GITHUB_ENV.
package printer

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	mu       sync.Mutex
	out      io.Writer = os.Stderr
	renderer           = lipgloss.NewRenderer(os.Stderr)

	faintStyle   = renderer.NewStyle().Faint(true)
	errorStyle   = renderer.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = renderer.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
)

// SetNoColor disables styling when disabled is true, when NO_COLOR is set,
// or when stderr is not a terminal.
func SetNoColor(disabled bool) {
	if disabled || os.Getenv("NO_COLOR") != "" || !IsTTY(os.Stderr) {
		renderer.SetColorProfile(termenv.Ascii)
	}
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}

// SetOutput redirects diagnostics and returns a func restoring the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return func() {
		mu.Lock()
		defer mu.Unlock()
		out = prev
	}
}

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// PrintError writes "error: <err>" to the diagnostics writer.
func PrintError(err error) {
	writeLine(Error("error:") + " " + err.Error())
}

// PrintHint writes a faint hint line to the diagnostics writer.
func PrintHint(text string) {
	writeLine(Faint("hint: " + text))
}

// PrintWarning writes a warning line to the diagnostics writer.
func PrintWarning(text string) {
	writeLine(Warning("warning:") + " " + text)
}

func writeLine(line string) {
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintln(out, line)
}
