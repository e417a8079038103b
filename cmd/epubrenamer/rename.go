package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/alexrwlaw/EPUBRenamer/internal/display"
	"github.com/alexrwlaw/EPUBRenamer/internal/pipeline"
)

var renameCmd = &cobra.Command{
	Use:   "rename SOURCE_DIR DEST_DIR",
	Short: "Rename EPUB files from SOURCE_DIR into DEST_DIR",
	Long: `Scan SOURCE_DIR recursively for EPUB files, build normalized names
from their metadata, and copy (or move, with -t move) each file into
DEST_DIR under its new name.

Examples:
  # Preview what would happen
  epubrenamer rename ~/Downloads ~/Books --dry-run

  # Move instead of copy, keeping accents
  epubrenamer rename ~/Downloads ~/Books -t move --keep-diacritics

  # Keep an audit trail
  epubrenamer rename ~/Downloads ~/Books --audit ~/renames.csv`,
	Args: cobra.ExactArgs(2),
	RunE: runRename,
}

func init() {
	addBatchFlags(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := resolveDirs(cfg, args[0], args[1]); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()
	display.PrintBanner(version)

	ctx, stop := signalContext()
	defer stop()

	stats := pipeline.Run(ctx, cfg, log)
	if stats.Failed > 0 {
		return errors.New("some files failed; see the log above")
	}
	return nil
}
