// Package display renders the banner and user-facing plan and summary
// lines. The logger handles leveled output; this package handles the
// pieces that are layout, not log.
package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Styles honor the global color.NoColor state, which term.Configure sets
// during startup.
var (
	bannerStyle = color.New(color.FgHiMagenta, color.Bold)
	sourceStyle = color.New(color.FgHiWhite)
	arrowStyle  = color.New(color.FgHiBlack)
	destStyle   = color.New(color.FgHiGreen)
	suffixStyle = color.New(color.FgHiYellow)
)

// PrintBanner prints the startup banner.
func PrintBanner(version string) {
	bannerStyle.Fprint(os.Stdout, ` _____ ____  _   _ ____  ____
| ____|  _ \| | | | __ )|  _ \ ___ _ __   __ _ _ __ ___   ___ _ __
|  _| | |_) | | | |  _ \| |_) / _ \ '_ \ / _` + "`" + ` | '_ ` + "`" + ` _ \ / _ \ '__|
| |___|  __/| |_| | |_) |  _ <  __/ | | | (_| | | | | | |  __/ |
|_____|_|    \___/|____/|_| \_\___|_| |_|\__,_|_| |_| |_|\___|_|
`)
	fmt.Fprintf(os.Stdout, "v%s\n\n", version)
}

// PlanLine formats one "source -> destination" plan row. Suffixed names
// (collision disambiguations) get their own style so they stand out in
// a long plan.
func PlanLine(source, dest string, suffixed bool) string {
	d := destStyle
	if suffixed {
		d = suffixStyle
	}
	return sourceStyle.Sprint(source) + arrowStyle.Sprint(" -> ") + d.Sprint(dest)
}

// FormatBytes returns a human-readable size (B, KiB, MiB, GiB, ...).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	suffixes := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	if exp >= len(suffixes) {
		exp = len(suffixes) - 1
		div = 1
		for i := 0; i <= exp; i++ {
			div *= unit
		}
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), suffixes[exp])
}
