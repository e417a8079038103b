package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/books/library", "/books/library"},
		{"single trailing slash", "/books/library/", "/books/library"},
		{"multiple trailing slashes", "/books/library///", "/books/library"},
		{"root path", "/", "/"},
		{"relative path", "incoming", "incoming"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_AuthorOrder(t *testing.T) {
	tests := []struct {
		name    string
		order   AuthorOrder
		wantErr bool
	}{
		{"as-is is valid", OrderAsIs, false},
		{"first-last is valid", OrderFirstLast, false},
		{"last-first is valid", OrderLastFirst, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "alphabetical", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.AuthorOrder = tt.order
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Transfer(t *testing.T) {
	tests := []struct {
		name    string
		mode    TransferMode
		wantErr bool
	}{
		{"copy is valid", TransferCopy, false},
		{"move is valid", TransferMove, false},
		{"empty is invalid", "", true},
		{"link is invalid", "link", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Transfer = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Extension(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		want    string
		wantErr bool
	}{
		{"dotted lowercase", ".epub", ".epub", false},
		{"uppercase lowered", ".EPUB", ".epub", false},
		{"missing dot", "epub", "", true},
		{"bare dot", ".", "", true},
		{"empty", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Extension = tt.ext
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg.Extension != tt.want {
				t.Errorf("Extension = %q, want %q", cfg.Extension, tt.want)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name    string
		source  string
		dest    string
		wantErr bool
	}{
		{"separate trees", "/a/in", "/a/out", false},
		{"dest equals source", "/a/in", "/a/in", true},
		{"dest inside source", "/a/in", "/a/in/out", true},
		{"shared prefix but sibling", "/a/in", "/a/inbox", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.ValidatePaths(tt.source, tt.dest)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.source, tt.dest, err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "author_order: last-first\nstrip_diacritics: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	if err := LoadFile(&cfg, path, true); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if cfg.AuthorOrder != OrderLastFirst {
		t.Errorf("AuthorOrder = %q, want %q", cfg.AuthorOrder, OrderLastFirst)
	}
	if cfg.StripDiacritics {
		t.Error("StripDiacritics = true, want false")
	}
	// Untouched keys keep their defaults.
	if !cfg.TitleCase {
		t.Error("TitleCase lost its default")
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := DefaultConfig()
	if err := LoadFile(&cfg, "/does/not/exist.yaml", false); err != nil {
		t.Errorf("implicit missing file should be ignored, got %v", err)
	}
	if err := LoadFile(&cfg, "/does/not/exist.yaml", true); err == nil {
		t.Error("explicit missing file should error")
	}
}
