// Package report writes cplate's human-readable status lines, colored by
// category: notices in yellow, successes in green, failures in red on the
// error stream.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorMode selects whether status lines carry ANSI colors.
type ColorMode string

const (
	// ColorAuto colors each stream only when that stream is a terminal.
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a color setting. The empty string means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, ColorNever:
		return ColorMode(s), nil
	default:
		return "", fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// Console writes status lines to an output and an error stream.
type Console struct {
	out io.Writer
	err io.Writer

	notice  *color.Color
	success *color.Color
	failure *color.Color
}

// New returns a Console writing to out and errOut.
func New(out, errOut io.Writer, mode ColorMode) *Console {
	c := &Console{
		out:     out,
		err:     errOut,
		notice:  color.New(color.FgYellow),
		success: color.New(color.FgGreen),
		failure: color.New(color.FgRed),
	}

	streams := []struct {
		col *color.Color
		w   io.Writer
	}{
		{c.notice, out},
		{c.success, out},
		{c.failure, errOut},
	}
	for _, s := range streams {
		switch {
		case mode == ColorAlways:
			s.col.EnableColor()
		case mode == ColorNever:
			s.col.DisableColor()
		case colorable(s.w):
			s.col.EnableColor()
		default:
			s.col.DisableColor()
		}
	}
	return c
}

// colorable reports whether w is a terminal and NO_COLOR is unset.
func colorable(w io.Writer) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

// Notice reports something the user should act on, such as a missing file.
func (c *Console) Notice(format string, args ...any) {
	fmt.Fprintln(c.out, c.notice.Sprintf(format, args...))
}

// Success reports a completed action.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.out, c.success.Sprintf(format, args...))
}

// Info reports a neutral status such as an entry that already exists.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Failure reports an error on the error stream.
func (c *Console) Failure(format string, args ...any) {
	fmt.Fprintln(c.err, c.failure.Sprintf(format, args...))
}
