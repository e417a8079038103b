package naming

import (
	"strings"
	"testing"
)

func TestResolveCollision(t *testing.T) {
	t.Run("free name kept and claimed", func(t *testing.T) {
		used := NewUsedNameSet()
		got := ResolveCollision("Book.epub", used, nil)
		if got != "Book.epub" {
			t.Errorf("ResolveCollision = %q, want %q", got, "Book.epub")
		}
		if !used.Contains("book.epub") {
			t.Error("resolved name was not claimed in the set")
		}
	})

	t.Run("duplicates get ordered suffixes", func(t *testing.T) {
		used := NewUsedNameSet()
		want := []string{"Book.epub", "Book (1).epub", "Book (2).epub"}
		for i, w := range want {
			if got := ResolveCollision("Book.epub", used, nil); got != w {
				t.Errorf("call %d = %q, want %q", i, got, w)
			}
		}
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		used := NewUsedNameSet()
		ResolveCollision("Book.epub", used, nil)
		if got := ResolveCollision("BOOK.EPUB", used, nil); got != "BOOK (1).EPUB" {
			t.Errorf("ResolveCollision = %q, want %q", got, "BOOK (1).EPUB")
		}
	})

	t.Run("existing names in destination are avoided", func(t *testing.T) {
		used := NewUsedNameSet()
		exists := func(name string) bool {
			lower := strings.ToLower(name)
			return lower == "book.epub" || lower == "book (1).epub"
		}
		if got := ResolveCollision("Book.epub", used, exists); got != "Book (2).epub" {
			t.Errorf("ResolveCollision = %q, want %q", got, "Book (2).epub")
		}
	})

	t.Run("suffix goes before the extension", func(t *testing.T) {
		used := NewUsedNameSet()
		ResolveCollision("a.b.epub", used, nil)
		if got := ResolveCollision("a.b.epub", used, nil); got != "a.b (1).epub" {
			t.Errorf("ResolveCollision = %q, want %q", got, "a.b (1).epub")
		}
	})
}

// All-identical candidates must come out pairwise distinct, and none may
// match a pre-seeded destination name.
func TestResolveCollisionBatchUniqueness(t *testing.T) {
	const n = 50
	used := NewUsedNameSet()
	preexisting := map[string]bool{"same.epub": true}
	exists := func(name string) bool { return preexisting[strings.ToLower(name)] }

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		got := ResolveCollision("Same.epub", used, exists)
		lower := strings.ToLower(got)
		if seen[lower] {
			t.Fatalf("duplicate resolved name %q", got)
		}
		if preexisting[lower] {
			t.Fatalf("resolved name %q collides with a pre-existing name", got)
		}
		seen[lower] = true
	}
	if used.Len() != n {
		t.Errorf("used set has %d entries, want %d", used.Len(), n)
	}
}

// First-seen keeps the clean name; enumeration order decides who gets it.
func TestResolveCollisionOrderSignificance(t *testing.T) {
	used := NewUsedNameSet()
	batch := []string{"X.epub", "Y.epub", "X.epub"}
	want := []string{"X.epub", "Y.epub", "X (1).epub"}
	for i, c := range batch {
		if got := ResolveCollision(c, used, nil); got != want[i] {
			t.Errorf("item %d (candidate %q): got %q, want %q", i, c, got, want[i])
		}
	}
}
