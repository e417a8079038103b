package naming

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		strip bool
		want  string
	}{
		{"plain text unchanged", "The Secret Agent", false, "The Secret Agent"},
		{"empty input", "", false, "Untitled"},
		{"whitespace only", "   \t  ", false, "Untitled"},
		{"all forbidden characters", `***???`, false, "Untitled"},
		{"forbidden replaced with space", `He said: "Hi"/Bye`, false, "He said Hi Bye"},
		{"em dash folded", "War — Peace", false, "War - Peace"},
		{"en dash folded", "1914–1918", false, "1914-1918"},
		{"ellipsis folded then trimmed", "Wait…", false, "Wait"},
		{"curly single quote straightened", "‘Tis Fine", false, "'Tis Fine"},
		{"curly double quotes then forbidden", "“Fine” Work", false, "Fine Work"},
		{"diacritics stripped", "Café Résumé", true, "Cafe Resume"},
		{"diacritics kept", "Café", false, "Café"},
		{"whitespace collapsed", "a   b\t c", false, "a b c"},
		{"trailing clutter trimmed", "Title.;:, ", false, "Title"},
		{"reserved device name", "con", false, "_con"},
		{"reserved device name upper", "LPT1", false, "_LPT1"},
		{"reserved only as whole name", "console", false, "console"},
		{"control characters", "a\x01b", false, "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in, tt.strip)
			if got != tt.want {
				t.Errorf("Sanitize(%q, %v) = %q, want %q", tt.in, tt.strip, got, tt.want)
			}
		})
	}
}

// Sanitize must return a usable filename for any input at all.
func TestSanitizeTotality(t *testing.T) {
	inputs := []string{
		"", " ", "\x00\x01\x02", `\/:*?"<>|`, "aux", "COM7",
		"———", strings.Repeat("?", 300), "é́é́é́",
	}
	for _, in := range inputs {
		got := Sanitize(in, true)
		if got == "" {
			t.Fatalf("Sanitize(%q) returned empty string", in)
		}
		for _, r := range got {
			if isForbidden(r) {
				t.Errorf("Sanitize(%q) = %q contains forbidden rune %q", in, got, r)
			}
		}
		if reservedNames[strings.ToLower(got)] {
			t.Errorf("Sanitize(%q) = %q is a reserved device name", in, got)
		}
	}
}

func TestSanitizeAccentedForbiddenChar(t *testing.T) {
	// A combining mark riding on a forbidden character: stripping runs
	// first, so the base character still degrades to a space instead of
	// surviving with its mark.
	got := Sanitize("a/́b", true)
	if got != "a b" {
		t.Errorf("Sanitize = %q, want %q", got, "a b")
	}
}
