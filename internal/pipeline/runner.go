package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/alexrwlaw/EPUBRenamer/internal/config"
	"github.com/alexrwlaw/EPUBRenamer/internal/display"
	"github.com/alexrwlaw/EPUBRenamer/internal/history"
	"github.com/alexrwlaw/EPUBRenamer/internal/logging"
	"github.com/alexrwlaw/EPUBRenamer/internal/naming"
)

// Run is the top-level batch entry point: discover files, build the rename
// plan, apply each item sequentially, and return aggregate stats.
// Cancellation is coarse-grained: the context is checked between items,
// never mid-item.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	files, err := Discover(cfg.SourceDir, cfg.Extension)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return RunStats{}
	}
	return runFiles(ctx, cfg, log, files)
}

// runFiles runs the batch over an explicit file list. Watch mode uses this
// directly so it can exclude files already handled in earlier cycles.
func runFiles(ctx context.Context, cfg *config.Config, log *logging.Logger, files []string) RunStats {
	var stats RunStats
	stats.Total = len(files)
	if stats.Total == 0 {
		log.Warn("No %s files found in %s", cfg.Extension, cfg.SourceDir)
		return stats
	}

	plan := BuildPlan(cfg, log, files, destProbe(cfg))

	var audit *AuditLog
	if cfg.AuditFile != "" {
		a, err := OpenAudit(cfg.AuditFile)
		if err != nil {
			log.Error("Cannot open audit log: %v", err)
			return stats
		}
		audit = a
		defer audit.Close()
	}

	var journal *history.Journal
	if !cfg.DryRun && !cfg.NoHistory {
		j, err := history.Open(cfg.HistoryPath)
		if err != nil {
			log.Warn("History journal unavailable: %v", err)
		} else {
			journal = j
			defer journal.Close()
		}
	}
	batch := history.NewBatchID(time.Now())

	logBatchHeader(cfg, log, &stats)

	for i, item := range plan {
		stats.Current = i + 1
		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}
		processItem(cfg, log, item, &stats, journal, audit, batch)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// destProbe returns the read-only existence probe for the destination, or
// nil when --force asked for pre-existing names to be ignored.
func destProbe(cfg *config.Config) naming.ExistsFunc {
	if cfg.Force {
		return nil
	}
	return func(name string) bool {
		_, err := os.Stat(filepath.Join(cfg.DestDir, name))
		return err == nil
	}
}

// processItem applies one plan entry: validate -> transfer -> record.
func processItem(
	cfg *config.Config,
	log *logging.Logger,
	item Item,
	stats *RunStats,
	journal *history.Journal,
	audit *AuditLog,
	batch string,
) {
	base := filepath.Base(item.Source)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, base)
	if item.Note != "" {
		log.Debug(cfg.Verbose, "  %s", item.Note)
	}
	if item.Suffixed {
		stats.Suffixed++
	}
	fmt.Println("  " + display.PlanLine(base, item.Name.FileName(), item.Suffixed))

	fi, err := os.Stat(item.Source)
	if err != nil {
		log.Error("File not found: %s", item.Source)
		stats.Failed++
		writeAudit(audit, log, item, "failed", err.Error())
		return
	}
	if fi.Size() == 0 {
		log.Warn("Skip (empty file): %s", base)
		stats.Skipped++
		writeAudit(audit, log, item, "skipped", "empty file")
		return
	}

	if cfg.DryRun {
		log.Success("[DRY] Would %s", transferVerb(cfg))
		stats.Renamed++
		writeAudit(audit, log, item, "planned", "")
		return
	}

	if err := os.MkdirAll(cfg.DestDir, 0o755); err != nil {
		log.Error("Cannot create destination directory: %v", err)
		stats.Failed++
		writeAudit(audit, log, item, "failed", err.Error())
		return
	}

	dest := filepath.Join(cfg.DestDir, item.Name.FileName())
	size, err := transfer(cfg, item.Source, dest)
	if err != nil {
		log.Error("%s failed: %v", transferVerb(cfg), err)
		stats.Failed++
		writeAudit(audit, log, item, "failed", err.Error())
		return
	}

	stats.Renamed++
	stats.TotalBytes += size

	if journal != nil {
		e := history.Entry{
			Source:    item.Source,
			Dest:      dest,
			Batch:     batch,
			AppliedAt: time.Now().UTC(),
		}
		if err := journal.Record(e); err != nil {
			log.Warn("History journal write failed: %v", err)
		}
	}
	writeAudit(audit, log, item, "applied", "")
	log.Success("%s (%s)", pastTense(cfg), display.FormatBytes(size))
}

func writeAudit(audit *AuditLog, log *logging.Logger, item Item, status, detail string) {
	if audit == nil {
		return
	}
	if err := audit.Write(item.Source, item.Name.FileName(), status, detail); err != nil {
		log.Warn("Audit write failed: %v", err)
	}
}

func transferVerb(cfg *config.Config) string {
	if cfg.Transfer == config.TransferMove {
		return "move"
	}
	return "copy"
}

func pastTense(cfg *config.Config) string {
	if cfg.Transfer == config.TransferMove {
		return "Moved"
	}
	return "Copied"
}

// transfer copies or moves src to dest and returns the byte size involved.
// Moves fall back to copy-and-remove when rename crosses a filesystem.
func transfer(cfg *config.Config, src, dest string) (int64, error) {
	if cfg.Transfer == config.TransferMove {
		fi, err := os.Stat(src)
		if err != nil {
			return 0, err
		}
		if err := os.Rename(src, dest); err == nil {
			return fi.Size(), nil
		}
		n, err := copyFile(src, dest)
		if err != nil {
			return 0, err
		}
		return n, os.Remove(src)
	}
	return copyFile(src, dest)
}

func copyFile(src, dest string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(dest)
		return 0, err
	}
	return n, nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Found %d files", stats.Total)
	log.Info("Transfer: %s", cfg.Transfer)
	log.Info("Author order: %s", cfg.AuthorOrder)
	if cfg.TitleCase {
		log.Info("Title case: smart (clause-aware)")
	} else {
		log.Info("Title case: off")
	}
	if cfg.StripDiacritics {
		log.Info("Diacritics: strip to ASCII base letters")
	} else {
		log.Info("Diacritics: keep")
	}
	if cfg.Force {
		log.Info("Existing names: overwrite (no destination probe)")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d renamed, %d skipped, %d failed", stats.Renamed, stats.Skipped, stats.Failed)
	if stats.Suffixed > 0 {
		log.Info("  Collision suffixes applied: %d", stats.Suffixed)
	}
	if cfg.DryRun {
		log.Info("  Data moved: n/a (dry run)")
		return
	}
	log.Info("  Data %sd: %s", transferVerb(cfg), display.FormatBytes(stats.TotalBytes))
}
