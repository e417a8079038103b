// Package config holds runtime configuration: defaults, optional YAML
// config file loading, and validation. Flag binding lives with the CLI
// commands; values resolve as defaults < config file < flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// --- Enum types for validated string fields ---

// AuthorOrder selects the display order produced by author normalization.
type AuthorOrder string

const (
	OrderAsIs      AuthorOrder = "as-is"      // Clean up spacing only, never reorder.
	OrderFirstLast AuthorOrder = "first-last" // "Jane Doe" (default).
	OrderLastFirst AuthorOrder = "last-first" // "Doe, Jane".
)

// TransferMode is how planned names are applied to source files.
type TransferMode string

const (
	TransferCopy TransferMode = "copy" // Copy into the destination (default).
	TransferMove TransferMode = "move" // Move/rename into the destination.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid from a YAML file by [LoadFile], and then mutated by
// CLI flag binding before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (set from positional args).
	SourceDir string `yaml:"-"`
	DestDir   string `yaml:"-"`

	// Normalization options, fixed for the duration of one batch run.
	Extension       string      `yaml:"extension"`        // Default: ".epub".
	StripDiacritics bool        `yaml:"strip_diacritics"` // Default: true.
	TitleCase       bool        `yaml:"title_case"`       // Default: true.
	AuthorOrder     AuthorOrder `yaml:"author_order"`     // Default: "first-last".

	// Behavior.
	Transfer    TransferMode  `yaml:"transfer"` // Default: "copy".
	DryRun      bool          `yaml:"-"`
	Force       bool          `yaml:"-"` // Ignore pre-existing destination names.
	NoHistory   bool          `yaml:"no_history"`
	WatchSettle time.Duration `yaml:"-"` // Default: 2s; flag-only.

	// Display and logging.
	Verbose     bool      `yaml:"verbose"`
	ColorMode   ColorMode `yaml:"color"`
	LogFile     string    `yaml:"log_file"`
	AuditFile   string    `yaml:"audit_file"`
	HistoryPath string    `yaml:"history_file"` // Default: ~/.epubrenamer/history.db.
}

// DefaultConfig returns a Config with all defaults in place, used as the
// base before file and flag overrides.
func DefaultConfig() Config {
	return Config{
		Extension:       ".epub",
		StripDiacritics: true,
		TitleCase:       true,
		AuthorOrder:     OrderFirstLast,
		Transfer:        TransferCopy,
		WatchSettle:     2 * time.Second,
		ColorMode:       ColorAuto,
		HistoryPath:     defaultStatePath("history.db"),
	}
}

// DefaultFilePath is where [LoadFile] looks when no --config flag is given.
func DefaultFilePath() string {
	return defaultStatePath("config.yaml")
}

func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	return filepath.Join(home, ".epubrenamer", name)
}

// LoadFile overlays cfg with values from a YAML file. A missing file is an
// error only when the path was explicitly requested.
func LoadFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that the
// extension is usable. Rejecting bad option values here keeps the pipeline
// itself total: it never sees an order outside the closed set.
func (c *Config) Validate() error {
	switch c.AuthorOrder {
	case OrderAsIs, OrderFirstLast, OrderLastFirst:
		// valid
	default:
		return errors.New("invalid author order (use 'as-is', 'first-last' or 'last-first')")
	}

	switch c.Transfer {
	case TransferCopy, TransferMove:
		// valid
	default:
		return errors.New("invalid transfer mode (use 'copy' or 'move')")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	ext := strings.TrimSpace(c.Extension)
	if !strings.HasPrefix(ext, ".") || ext == "." {
		return fmt.Errorf("invalid extension %q (use a dotted extension like '.epub')", c.Extension)
	}
	c.Extension = strings.ToLower(ext)

	if c.WatchSettle <= 0 {
		return errors.New("watch settle delay must be positive")
	}
	return nil
}

// ValidatePaths ensures the resolved destination directory is not inside
// (or equal to) the resolved source directory, which would make the batch
// discover its own output. Both arguments must be absolute,
// symlink-resolved paths.
func (c *Config) ValidatePaths(sourceAbs, destAbs string) error {
	sep := string(filepath.Separator)
	if destAbs == sourceAbs || strings.HasPrefix(destAbs+sep, sourceAbs+sep) {
		return errors.New("destination directory must not be inside source directory")
	}
	return nil
}
