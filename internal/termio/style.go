package termio

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is either one of the 16 basic ANSI colours or an entry of the
// 256-colour palette.
type Color struct {
	indexed bool
	index   int
}

// Basic colours (0-7 normal, 8-15 bright).
var (
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)

	BrightBlack   = basic(8)
	BrightRed     = basic(9)
	BrightGreen   = basic(10)
	BrightYellow  = basic(11)
	BrightBlue    = basic(12)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

// LightPurple is a 256-palette colour used for debug output.
var LightPurple = Indexed(141)

func basic(i int) Color { return Color{index: i} }

// Indexed returns a 256-colour palette entry (0-255).
func Indexed(i int) Color { return Color{indexed: true, index: i} }

// code renders the SGR parameter for c, or "" when the terminal cannot show it.
func (c Color) code(level int) string {
	if c.indexed {
		if level < 2 {
			return ""
		}
		return "38;5;" + strconv.Itoa(c.index)
	}
	idx := min(max(c.index, 0), 15)
	if idx < 8 {
		return strconv.Itoa(30 + idx)
	}
	return strconv.Itoa(90 + idx - 8)
}

// Style is a fluent builder for a foreground colour plus attributes.
type Style struct {
	fg        *Color
	bold      bool
	faint     bool
	underline bool
}

func NewStyle() *Style             { return &Style{} }
func (s *Style) Fg(c Color) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style      { s.bold = true; return s }
func (s *Style) Faint() *Style     { s.faint = true; return s }
func (s *Style) Underline() *Style { s.underline = true; return s }

// Sprint styles text for t, or returns it unchanged without colour support.
func (s *Style) Sprint(t *Terminal, text string) string {
	if !t.SupportsColor() {
		return text
	}
	var codes []string
	if s.bold {
		codes = append(codes, "1")
	}
	if s.faint {
		codes = append(codes, "2")
	}
	if s.underline {
		codes = append(codes, "4")
	}
	if s.fg != nil {
		if c := s.fg.code(t.ColorLevel()); c != "" {
			codes = append(codes, c)
		}
	}
	if len(codes) == 0 {
		return text
	}
	return "\x1b[" + strings.Join(codes, ";") + "m" + text + "\x1b[0m"
}

// Sprintf formats with fmt.Sprintf and applies the style.
func (s *Style) Sprintf(t *Terminal, format string, a ...any) string {
	return s.Sprint(t, fmt.Sprintf(format, a...))
}

// Theme maps semantic roles to colours.
type Theme struct {
	Primary, Success, Warning, Error, Info, Debug, Muted Color
}

// DefaultTheme picks a theme for the terminal's colour level.
func DefaultTheme(t *Terminal) Theme {
	theme := Theme{
		Primary: BrightBlue,
		Success: BrightGreen,
		Warning: BrightYellow,
		Error:   BrightRed,
		Info:    BrightCyan,
		Debug:   BrightMagenta,
		Muted:   BrightBlack,
	}
	if t.ColorLevel() >= 2 {
		theme.Debug = LightPurple
	}
	return theme
}
