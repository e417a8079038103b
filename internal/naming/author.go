package naming

import (
	"strings"
	"unicode"
)

// Order is the requested author display order.
type Order string

const (
	OrderAsIs      Order = "as-is"
	OrderFirstLast Order = "first-last"
	OrderLastFirst Order = "last-first"
)

// nameSuffixes is the closed list of generational suffixes accepted as a
// third comma segment. Compared case-insensitively with any trailing
// period ignored.
var nameSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true, "v": true,
}

// NormalizeAuthor cleans up whitespace and comma spacing in an author
// string and, when order asks for it, reorders an unambiguous
// "Last, First[, Suffix]" form. It never fails: whenever reordering would
// require guessing, the cleaned input is returned unchanged.
func NormalizeAuthor(input string, order Order) string {
	s := cleanAuthorSpacing(input)

	// Without an explicit separator an order is never guessed.
	if order == OrderAsIs || !strings.Contains(s, ",") {
		return s
	}

	segs := splitCommaSegments(s)
	if len(segs) < 2 {
		return s
	}
	// More than three segments means several authors crammed into one
	// field; leave it alone.
	if len(segs) > 3 {
		return s
	}

	last, first := segs[0], segs[1]
	suffix := ""
	if len(segs) == 3 {
		if !isNameSuffix(segs[2]) {
			return s
		}
		suffix = segs[2]
	}

	// Two multi-word segments is almost certainly two different authors
	// joined by a comma, not one "Last, First" name.
	if wordCount(last) >= 2 && wordCount(first) >= 2 {
		return s
	}

	var out string
	switch order {
	case OrderFirstLast:
		out = first + " " + last
	case OrderLastFirst:
		out = last + ", " + first
	default:
		return s
	}
	if suffix != "" {
		out += ", " + suffix
	}
	return strings.Join(strings.Fields(out), " ")
}

// cleanAuthorSpacing collapses whitespace, normalizes comma spacing (no
// space before, exactly one after, no doubled commas), and restores the
// space after an initial's period ("J.Kent" -> "J. Kent"). The period fix
// triggers only before an uppercase letter so lowercase abbreviations like
// "e.g." are untouched.
func cleanAuthorSpacing(input string) string {
	s := strings.Join(strings.Fields(input), " ")
	for strings.Contains(s, " ,") {
		s = strings.ReplaceAll(s, " ,", ",")
	}
	for strings.Contains(s, ",,") {
		s = strings.ReplaceAll(s, ",,", ",")
	}

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		b.WriteRune(r)
		if i+1 >= len(runes) {
			continue
		}
		switch r {
		case ',':
			if runes[i+1] != ' ' {
				b.WriteRune(' ')
			}
		case '.':
			if i > 0 && unicode.IsLetter(runes[i-1]) && unicode.IsUpper(runes[i+1]) {
				b.WriteRune(' ')
			}
		}
	}
	return b.String()
}

func splitCommaSegments(s string) []string {
	parts := strings.Split(s, ",")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

func isNameSuffix(seg string) bool {
	return nameSuffixes[strings.ToLower(strings.TrimSuffix(seg, "."))]
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}
