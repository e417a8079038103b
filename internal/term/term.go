// Package term owns the process-wide color decision. [Configure] resolves
// the configured mode against the terminal once at startup and feeds the
// result to both consumers: the raw ANSI level prefixes used by logging,
// and the fatih/color global state used by display.
package term

import (
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/alexrwlaw/EPUBRenamer/internal/config"
)

// Log level prefixes as raw ANSI sequences, empty when colors are off so
// string concatenation in the logger is a no-op.
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Blue   = ""
	Cyan   = ""
	NC     = "" // Reset sequence.
)

var enabled bool

// ansi is the bright-bold palette, keyed by pointer so Configure can
// assign and clear the variables from one table.
var ansi = map[*string]string{
	&Red:    "\033[1;91m",
	&Green:  "\033[1;92m",
	&Yellow: "\033[1;93m",
	&Blue:   "\033[1;94m",
	&Cyan:   "\033[1;96m",
	&NC:     "\033[0m",
}

// Configure resolves mode and sets all color state, ours and fatih/color's.
// Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	enabled = colorsWanted(mode)
	for v, code := range ansi {
		if enabled {
			*v = code
		} else {
			*v = ""
		}
	}
	color.NoColor = !enabled
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return enabled }

// colorsWanted applies the mode, TTY detection, and the conventional
// NO_COLOR / TERM=dumb escape hatches (https://no-color.org).
func colorsWanted(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
