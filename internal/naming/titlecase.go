package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Domain selects the minor-word list used by [TitleCase]. Author strings
// additionally treat lowercase name particles ("del", "van", ...) as minor
// words so "Oscar de la Hoya" keeps its particles lowercase.
type Domain int

const (
	DomainTitle Domain = iota
	DomainAuthor
)

// titleMinorWords are the articles, short prepositions, and conjunctions
// conventionally lowercased mid-title. The list is closed on purpose.
var titleMinorWords = map[string]bool{
	"a": true, "an": true, "the": true,
	"and": true, "but": true, "nor": true, "or": true, "so": true, "yet": true,
	"as": true, "at": true, "by": true, "for": true, "in": true, "of": true,
	"off": true, "on": true, "per": true, "to": true, "up": true, "via": true,
	"vs": true,
}

// authorParticles extend the minor-word list in [DomainAuthor].
var authorParticles = map[string]bool{
	"de": true, "del": true, "della": true, "der": true, "di": true,
	"da": true, "van": true, "von": true, "la": true, "le": true,
}

// knownAcronyms are uppercased regardless of the input casing. All-caps
// input of two or more letters is always preserved; this list additionally
// rescues a handful of initialisms that commonly arrive lowercased in
// scraped metadata.
var knownAcronyms = map[string]bool{
	"nasa": true, "cia": true, "fbi": true, "nsa": true, "nato": true,
	"un": true, "uk": true, "usa": true, "ussr": true, "eu": true,
	"bbc": true, "tv": true, "ai": true, "diy": true, "faq": true,
}

// token is the transient per-word unit of one title-case pass.
type token struct {
	leading  string // punctuation before the first alphanumeric rune
	core     string // from first to last alphanumeric rune, inclusive
	trailing string // punctuation after the last alphanumeric rune
}

// segmentContext carries the cross-token state a classification rule may
// consult for one hyphen segment.
type segmentContext struct {
	trailing  string // the owning token's trailing punctuation
	domain    Domain
	first     bool // token is the first of the whole string
	last      bool // token is the last of the whole string
	newClause bool // token starts a new clause (string start or after a boundary)
}

// segmentRule pairs a predicate with a transform. Rules are evaluated in
// order by transformSegment; first match wins.
type segmentRule struct {
	name  string
	match func(seg string, ctx segmentContext) bool
	apply func(seg string) string
}

var segmentRules = []segmentRule{
	{"acronym", matchAcronym, strings.ToUpper},
	{"initial", matchInitial, strings.ToUpper},
	{"minor-word", matchMinorWord, strings.ToLower},
	{"capitalize", func(string, segmentContext) bool { return true }, capitalizeSegment},
}

// TitleCase rewrites the casing of input word by word. The input is assumed
// to already have collapsed single-space word separation (the sanitizer's
// job). It is a pure function; see the tests for where repeated application
// is and is not stable.
func TitleCase(input string, domain Domain) string {
	toks := strings.Split(input, " ")
	out := make([]string, len(toks))

	newClause := true
	for i, raw := range toks {
		t := splitToken(raw)

		if t.core == "" {
			// Punctuation-only token: passes through, still moves the
			// clause flag.
			out[i] = raw
			newClause = clauseBoundary(t.trailing, next(toks, i))
			continue
		}

		ctx := segmentContext{
			trailing:  t.trailing,
			domain:    domain,
			first:     i == 0,
			last:      i == len(toks)-1,
			newClause: newClause,
		}

		segs := strings.Split(t.core, "-")
		for j, seg := range segs {
			segs[j] = transformSegment(seg, ctx)
		}
		out[i] = t.leading + strings.Join(segs, "-") + t.trailing

		newClause = clauseBoundary(t.trailing, next(toks, i))
	}
	return strings.Join(out, " ")
}

func next(toks []string, i int) string {
	if i+1 < len(toks) {
		return toks[i+1]
	}
	return ""
}

// splitToken scans from both ends for the first and last alphanumeric rune.
// A token with no alphanumeric content comes back with an empty core and
// the whole token as trailing punctuation, so clause detection still sees
// a lone ":" or quote.
func splitToken(tok string) token {
	runes := []rune(tok)
	first, last := -1, -1
	for i, r := range runes {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return token{trailing: tok}
	}
	return token{
		leading:  string(runes[:first]),
		core:     string(runes[first : last+1]),
		trailing: string(runes[last+1:]),
	}
}

// clauseBoundary reports whether the token that owns trailing ends a clause,
// so that the following token should be treated as a fresh title segment.
// A comma counts only when the next token starts uppercase (subtitle
// heuristic); this is known to misfire on plain lists of proper nouns
// ("Smith, Jones and Co.") and is kept as an accepted approximation.
func clauseBoundary(trailing, nextTok string) bool {
	for _, r := range trailing {
		switch r {
		case ':', '·', '’', '”', '"', '\'':
			return true
		case ',':
			if r0, _ := utf8.DecodeRuneInString(nextTok); unicode.IsUpper(r0) {
				return true
			}
		}
	}
	return false
}

func transformSegment(seg string, ctx segmentContext) string {
	if seg == "" {
		return seg
	}
	for _, rule := range segmentRules {
		if rule.match(seg, ctx) {
			return rule.apply(seg)
		}
	}
	return seg
}

// matchAcronym: all-caps input of two or more letters, or a member of the
// closed acronym list. Forced fully uppercase either way.
func matchAcronym(seg string, _ segmentContext) bool {
	if knownAcronyms[strings.ToLower(seg)] {
		return true
	}
	letters := 0
	for _, r := range seg {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= 2
}

// matchInitial: a single rune followed by a period in the token's trailing
// punctuation ("J." in "J. Kent"). Never treated as the article "a".
func matchInitial(seg string, ctx segmentContext) bool {
	return utf8.RuneCountInString(seg) == 1 && strings.HasPrefix(ctx.trailing, ".")
}

// matchMinorWord: lowercased only strictly mid-string and never at the start
// of a new clause.
func matchMinorWord(seg string, ctx segmentContext) bool {
	if ctx.first || ctx.last || ctx.newClause {
		return false
	}
	lower := strings.ToLower(seg)
	if titleMinorWords[lower] {
		return true
	}
	return ctx.domain == DomainAuthor && authorParticles[lower]
}

// capitalizeSegment is the default transform: lowercase the segment, then
// uppercase its first letter. Intentional internal capitalization
// ("McCarthy", "iPhone") is preserved verbatim. The letter after a leading
// O'/D'/L' apostrophe is uppercased ("o'brien" -> "O'Brien") while
// possessives like "Hitchhiker's" are left alone, and a leading "Mc" gets
// its third letter re-uppercased after the initial lowering.
func capitalizeSegment(seg string) string {
	runes := []rune(seg)
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return seg
		}
	}

	out := []rune(strings.ToLower(seg))
	out[0] = unicode.ToUpper(out[0])

	if len(out) >= 3 {
		if (out[0] == 'O' || out[0] == 'D' || out[0] == 'L') &&
			(out[1] == '\'' || out[1] == '’') && unicode.IsLetter(out[2]) {
			out[2] = unicode.ToUpper(out[2])
		}
		if out[0] == 'M' && out[1] == 'c' && unicode.IsLetter(out[2]) {
			out[2] = unicode.ToUpper(out[2])
		}
	}
	return string(out)
}
