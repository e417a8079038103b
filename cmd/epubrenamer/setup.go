package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexrwlaw/EPUBRenamer/internal/config"
	"github.com/alexrwlaw/EPUBRenamer/internal/logging"
)

// Batch flags, shared by rename and watch.
var (
	flagTransfer       string
	flagOrder          string
	flagExtension      string
	flagDryRun         bool
	flagForce          bool
	flagNoTitleCase    bool
	flagKeepDiacritics bool
	flagAudit          string
	flagHistory        string
	flagNoHistory      bool
	flagSettle         time.Duration
)

func addBatchFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&flagTransfer, "transfer", "t", "", "transfer mode: copy or move (default copy)")
	f.StringVar(&flagOrder, "author-order", "", "author name order: as-is, first-last, last-first (default first-last)")
	f.StringVarP(&flagExtension, "extension", "e", "", "file extension to process (default .epub)")
	f.BoolVarP(&flagDryRun, "dry-run", "n", false, "print the plan without touching any files")
	f.BoolVarP(&flagForce, "force", "f", false, "ignore existing destination names (may overwrite)")
	f.BoolVar(&flagNoTitleCase, "no-titlecase", false, "keep metadata casing instead of smart title case")
	f.BoolVar(&flagKeepDiacritics, "keep-diacritics", false, "keep accented characters instead of stripping to ASCII")
	f.StringVar(&flagAudit, "audit", "", "append per-file CSV audit rows to this file")
	f.StringVar(&flagHistory, "history", "", "undo journal path (default ~/.epubrenamer/history.db)")
	f.BoolVar(&flagNoHistory, "no-history", false, "do not record renames in the undo journal")
}

// loadConfig builds the effective configuration: defaults, then the config
// file, then any flags the user actually set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	path, explicit := config.DefaultFilePath(), false
	if configPath != "" {
		path, explicit = configPath, true
	}
	if err := config.LoadFile(&cfg, path, explicit); err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("transfer") {
		cfg.Transfer = config.TransferMode(flagTransfer)
	}
	if changed("author-order") {
		cfg.AuthorOrder = config.AuthorOrder(flagOrder)
	}
	if changed("extension") {
		cfg.Extension = flagExtension
	}
	if changed("dry-run") {
		cfg.DryRun = flagDryRun
	}
	if changed("force") {
		cfg.Force = flagForce
	}
	if changed("no-titlecase") {
		cfg.TitleCase = !flagNoTitleCase
	}
	if changed("keep-diacritics") {
		cfg.StripDiacritics = !flagKeepDiacritics
	}
	if changed("audit") {
		cfg.AuditFile = flagAudit
	}
	if changed("history") {
		cfg.HistoryPath = flagHistory
	}
	if changed("no-history") {
		cfg.NoHistory = flagNoHistory
	}
	if changed("settle") {
		cfg.WatchSettle = flagSettle
	}
	if verbose {
		cfg.Verbose = true
	}
	if colorMode != "" {
		cfg.ColorMode = config.ColorMode(colorMode)
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveDirs fills cfg.SourceDir and cfg.DestDir from positional args and
// rejects a destination nested inside the source. The destination may not
// exist yet, so only the source is symlink-resolved.
func resolveDirs(cfg *config.Config, srcArg, destArg string) error {
	src := config.NormalizeDirArg(srcArg)
	dest := config.NormalizeDirArg(destArg)

	srcAbs, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	if resolved, err := filepath.EvalSymlinks(srcAbs); err == nil {
		srcAbs = resolved
	}
	fi, err := os.Stat(srcAbs)
	if err != nil {
		return fmt.Errorf("source directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("source %s is not a directory", srcArg)
	}

	destAbs, err := filepath.Abs(dest)
	if err != nil {
		return err
	}
	if err := cfg.ValidatePaths(srcAbs, destAbs); err != nil {
		return err
	}

	cfg.SourceDir = srcAbs
	cfg.DestDir = destAbs
	return nil
}

// newLogger wires up color state and the leveled logger.
func newLogger(cfg *config.Config) (*logging.Logger, error) {
	return logging.NewLogger(cfg)
}

// signalContext returns a context cancelled by SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}
