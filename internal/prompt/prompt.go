package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// Decision is the user's answer to a confirmation prompt.
type Decision int

const (
	Decline Decision = iota
	Accept
)

func (d Decision) String() string {
	if d == Accept {
		return "accept"
	}
	return "decline"
}

// affirmative is the only answer that accepts, compared case-insensitively.
const affirmative = "y"

// Parse turns a raw answer into a Decision. Only "y" or "Y", surrounded by
// optional whitespace, accepts.
func Parse(answer string) Decision {
	if strings.EqualFold(strings.TrimSpace(answer), affirmative) {
		return Accept
	}
	return Decline
}

// Confirmer reads yes/no answers line by line. The same buffered reader is
// used for every question so piped input answers successive prompts in order.
type Confirmer struct {
	reader *bufio.Reader
	w      io.Writer
	echo   bool
}

// New returns a Confirmer asking on w and reading answers from r.
func New(r io.Reader, w io.Writer) *Confirmer {
	return &Confirmer{
		reader: bufio.NewReader(r),
		w:      w,
		echo:   !isTerminal(r),
	}
}

// Confirm writes question and blocks until a line is read. Read errors,
// including end of input, count as Decline.
func (c *Confirmer) Confirm(question string) Decision {
	fmt.Fprint(c.w, question)

	line, err := c.reader.ReadString('\n')

	// A terminal echoes the user's newline; piped input does not.
	if c.echo {
		fmt.Fprintln(c.w)
	}

	if err != nil && line == "" {
		return Decline
	}
	return Parse(line)
}

// Func adapts a plain function to the Confirm method set.
type Func func(question string) Decision

// Confirm calls f(question).
func (f Func) Confirm(question string) Decision { return f(question) }

// Always returns a Func that gives d without asking.
func Always(d Decision) Func {
	return func(string) Decision { return d }
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
