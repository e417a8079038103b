package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// FallbackName is returned by [Sanitize] when nothing usable survives.
const FallbackName = "Untitled"

// typographic punctuation folded to ASCII-safe equivalents before any
// other pass. Dash variants become "-", the ellipsis glyph becomes ".",
// curly quotes become their straight forms.
var punctFolder = strings.NewReplacer(
	"—", "-", // em dash
	"–", "-", // en dash
	"―", "-", // horizontal bar
	"…", ".", // ellipsis
	"‘", "'",
	"’", "'",
	"“", `"`,
	"”", `"`,
)

// diacriticStripper decomposes each character canonically, drops combining
// marks, and recomposes. "é" becomes "e"; characters with no base form
// (e.g. CJK) pass through untouched.
var diacriticStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// reservedNames are device names that cannot be used as a bare filename on
// Windows regardless of extension handling.
var reservedNames = map[string]bool{
	"con": true, "prn": true, "aux": true, "nul": true,
	"com1": true, "com2": true, "com3": true, "com4": true, "com5": true,
	"com6": true, "com7": true, "com8": true, "com9": true,
	"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true, "lpt5": true,
	"lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
}

// Sanitize makes input safe to use as a filename (or filename component).
// It never fails and never returns an empty string. Forbidden characters
// are replaced with a space rather than deleted, so that removing a
// character cannot fuse two unrelated words together.
func Sanitize(input string, stripDiacritics bool) string {
	if strings.TrimSpace(input) == "" {
		return FallbackName
	}

	s := punctFolder.Replace(input)

	// Diacritics are stripped before forbidden-char replacement so an
	// accented forbidden character still degrades to its base form first.
	if stripDiacritics {
		if out, _, err := transform.String(diacriticStripper, s); err == nil {
			s = out
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isForbidden(r) {
			b.WriteRune(' ')
		} else {
			b.WriteRune(r)
		}
	}

	s = strings.Join(strings.Fields(b.String()), " ")

	// Scraped metadata often ends in punctuation clutter.
	s = strings.TrimRight(s, ". ;:,")

	if s == "" {
		return FallbackName
	}
	if reservedNames[strings.ToLower(s)] {
		return "_" + s
	}
	return s
}

// isForbidden reports whether r may not appear in a filename on the target
// filesystems (control characters plus the Windows-reserved set).
func isForbidden(r rune) bool {
	if r < 0x20 || r == 0x7f {
		return true
	}
	switch r {
	case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
		return true
	}
	return false
}
