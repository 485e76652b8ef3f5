// Package termio binds a program's output streams to terminal capabilities
// and provides a small semantic logger and ANSI styles on top of them.
package termio

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Terminal holds the streams a program writes to and decides whether ANSI
// colour may be used on them.
type Terminal struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	forceColor bool
	noColor    bool
	level      int // forced colour level, -1 for auto
}

// New returns a Terminal bound to the process stdio.
func New() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout, err: os.Stderr, level: -1}
}

// WithIn sets the input reader.
func (t *Terminal) WithIn(r io.Reader) *Terminal { t.in = r; return t }

// WithOut sets the standard output writer.
func (t *Terminal) WithOut(w io.Writer) *Terminal { t.out = w; return t }

// WithErr sets the standard error writer.
func (t *Terminal) WithErr(w io.Writer) *Terminal { t.err = w; return t }

// ForceColor turns colour on regardless of environment.
func (t *Terminal) ForceColor() *Terminal { t.forceColor, t.noColor = true, false; return t }

// NoColor turns colour off regardless of environment.
func (t *Terminal) NoColor() *Terminal { t.noColor, t.forceColor = true, false; return t }

// ForceColorLevel pins the colour level (0 none, 1 basic, 2 256-colour).
func (t *Terminal) ForceColorLevel(level int) *Terminal { t.level = level; return t }

func (t *Terminal) In() io.Reader  { return t.in }
func (t *Terminal) Out() io.Writer { return t.out }
func (t *Terminal) Err() io.Writer { return t.err }

// SupportsColor reports whether ANSI sequences should be emitted.
// NO_COLOR wins over FORCE_COLOR; both win over detection.
func (t *Terminal) SupportsColor() bool {
	if t.noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	if t.forceColor || os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	if !isTerminal(t.out) {
		return false
	}
	term := os.Getenv("TERM")
	return term != "" && term != "dumb"
}

// ColorLevel returns 0 for no colour, 1 for the basic 16 colours and 2 when
// the 256-colour palette is available.
func (t *Terminal) ColorLevel() int {
	if t.level >= 0 {
		return t.level
	}
	if !t.SupportsColor() {
		return 0
	}
	if ct := os.Getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return 2
	}
	if strings.Contains(os.Getenv("TERM"), "256color") {
		return 2
	}
	return 1
}

// Colorize wraps s in the SGR code when colour is supported.
func (t *Terminal) Colorize(s, code string) string {
	if !t.SupportsColor() {
		return s
	}
	return "\x1b[" + code + "m" + s + "\x1b[0m"
}

// Bold returns s in bold when colour is supported.
func (t *Terminal) Bold(s string) string { return t.Colorize(s, "1") }

// isTerminal reports whether w is an interactive terminal, including the
// Cygwin/MSYS pseudo terminals used on Windows.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
