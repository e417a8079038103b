package main

import (
	"github.com/spf13/cobra"

	"github.com/alexrwlaw/EPUBRenamer/internal/display"
	"github.com/alexrwlaw/EPUBRenamer/internal/pipeline"
)

var watchCmd = &cobra.Command{
	Use:   "watch SOURCE_DIR DEST_DIR",
	Short: "Watch SOURCE_DIR and rename new EPUB files as they arrive",
	Long: `Run an initial batch, then keep watching SOURCE_DIR. When new EPUB
files appear (and the directory has been quiet for the settle delay),
another batch runs automatically. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	addBatchFlags(watchCmd)
	watchCmd.Flags().DurationVar(&flagSettle, "settle", 0, "quiet period before picking up new files (default 2s)")
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	return pipeline.Watch(ctx, cfg, log)
}
