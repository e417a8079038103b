package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/alexrwlaw/EPUBRenamer/internal/history"
	"github.com/alexrwlaw/EPUBRenamer/internal/logging"
)

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent rename batch",
	Long: `Replay the most recent batch from the undo journal in reverse.
Copied files are deleted from the destination; moved files are moved
back to where they came from.`,
	Args: cobra.NoArgs,
	RunE: runUndo,
}

func init() {
	f := undoCmd.Flags()
	f.StringVar(&flagHistory, "history", "", "undo journal path (default ~/.epubrenamer/history.db)")
	f.BoolVarP(&flagDryRun, "dry-run", "n", false, "print what would be undone without touching any files")
}

func runUndo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	journal, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return fmt.Errorf("open undo journal: %w", err)
	}
	defer journal.Close()

	entries, err := journal.LastBatch()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		log.Info("Nothing to undo")
		return nil
	}
	log.Info("Undoing batch of %d files", len(entries))

	failed := 0
	for i := len(entries) - 1; i >= 0; i-- {
		if err := undoEntry(cfg.DryRun, log, entries[i]); err != nil {
			log.Error("%s: %v", filepath.Base(entries[i].Dest), err)
			failed++
			continue
		}
		if !cfg.DryRun {
			if err := journal.Remove(entries[i].Dest); err != nil {
				log.Warn("Journal cleanup failed: %v", err)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be undone", failed, len(entries))
	}
	log.Success("Undone: %d files", len(entries))
	return nil
}

// undoEntry reverses one journal entry. A copy left the source in place, so
// the destination is simply deleted; a move gets renamed back.
func undoEntry(dryRun bool, log *logging.Logger, e history.Entry) error {
	if _, err := os.Stat(e.Dest); err != nil {
		return fmt.Errorf("destination missing: %w", err)
	}

	if _, err := os.Stat(e.Source); err == nil {
		if dryRun {
			log.Info("[DRY] Would delete %s (source still present)", e.Dest)
			return nil
		}
		return os.Remove(e.Dest)
	}

	if dryRun {
		log.Info("[DRY] Would move %s back to %s", e.Dest, e.Source)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(e.Source), 0o755); err != nil {
		return err
	}
	return os.Rename(e.Dest, e.Source)
}
