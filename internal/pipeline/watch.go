package pipeline

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexrwlaw/EPUBRenamer/internal/config"
	"github.com/alexrwlaw/EPUBRenamer/internal/logging"
)

// watchState tracks which source paths earlier cycles already handled, so
// a settle cycle only processes new arrivals. In copy mode the sources
// stay in place between cycles; without this, every cycle would re-copy
// the whole directory under fresh collision suffixes.
type watchState struct {
	seen map[string]bool
}

func newWatchState() *watchState {
	return &watchState{seen: make(map[string]bool)}
}

// cycle discovers the current directory contents and runs a batch over the
// files not handled before. Every attempted file is marked handled, failed
// ones included, so a persistently broken file cannot retrigger forever.
func (w *watchState) cycle(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	files, err := Discover(cfg.SourceDir, cfg.Extension)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return RunStats{}
	}

	var fresh []string
	for _, f := range files {
		if !w.seen[f] {
			fresh = append(fresh, f)
		}
	}
	if len(fresh) == 0 {
		log.Debug(cfg.Verbose, "No new files")
		return RunStats{}
	}

	stats := runFiles(ctx, cfg, log, fresh)
	for _, f := range fresh {
		w.seen[f] = true
	}
	return stats
}

// Watch runs an initial batch, then keeps watching the source directory and
// processes newly arrived files after the filesystem has been quiet for
// cfg.WatchSettle. The settle delay lets slow downloads finish before files
// are picked up. Returns when ctx is cancelled or the watcher fails.
func Watch(ctx context.Context, cfg *config.Config, log *logging.Logger) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(cfg.SourceDir); err != nil {
		return err
	}

	state := newWatchState()
	state.cycle(ctx, cfg, log)
	log.Info("Watching %s (settle %s, Ctrl-C to stop)", cfg.SourceDir, cfg.WatchSettle)

	// The timer starts stopped; relevant events arm it, and each further
	// event pushes the deadline back.
	settle := time.NewTimer(cfg.WatchSettle)
	if !settle.Stop() {
		<-settle.C
	}
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !watchRelevant(ev, cfg.Extension) {
				continue
			}
			log.Debug(cfg.Verbose, "Event: %s %s", ev.Op, filepath.Base(ev.Name))
			if !settle.Stop() {
				select {
				case <-settle.C:
				default:
				}
			}
			settle.Reset(cfg.WatchSettle)

		case <-settle.C:
			state.cycle(ctx, cfg, log)
			log.Info("Watching %s", cfg.SourceDir)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("Watcher error: %v", err)
		}
	}
}

// watchRelevant reports whether an event can introduce a new candidate file.
func watchRelevant(ev fsnotify.Event, ext string) bool {
	if !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Rename) {
		return false
	}
	return strings.EqualFold(filepath.Ext(ev.Name), ext)
}
