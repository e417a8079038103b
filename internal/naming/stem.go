package naming

import "strings"

// MaxStemLength caps the assembled stem (filename without extension).
const MaxStemLength = 120

// ProposedName is one planned output filename for a source item. The stem
// is mutated only by collision resolution, which may append a
// disambiguating suffix.
type ProposedName struct {
	SourceID string
	Stem     string
	Ext      string
}

// FileName returns the full proposed filename.
func (p ProposedName) FileName() string { return p.Stem + p.Ext }

// BuildStem sanitizes title and authors independently, joins them as
// "Title - Authors" (title alone when there are no authors), and truncates
// to [MaxStemLength] without leaving dangling punctuation at the cut.
func BuildStem(title, authorsJoined string, stripDiacritics bool) string {
	stem := Sanitize(title, stripDiacritics)
	if strings.TrimSpace(authorsJoined) != "" {
		stem += " - " + Sanitize(authorsJoined, stripDiacritics)
	}
	stem = strings.Join(strings.Fields(stem), " ")

	if runes := []rune(stem); len(runes) > MaxStemLength {
		stem = strings.TrimRight(string(runes[:MaxStemLength]), ". ")
	}
	return stem
}

// BuildFileName assembles stem and extension and sanitizes the result once
// more, catching anything the concatenation itself introduced.
func BuildFileName(stem, ext string, stripDiacritics bool) string {
	return Sanitize(stem+ext, stripDiacritics)
}
