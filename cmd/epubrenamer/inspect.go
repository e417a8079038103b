package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexrwlaw/EPUBRenamer/internal/inspect"
	"github.com/alexrwlaw/EPUBRenamer/internal/pipeline"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect PATH...",
	Short: "Report which tools produced an EPUB file",
	Long: `Scan EPUB files for production-tool fingerprints (calibre, Sigil,
Pandoc, InDesign and others) and report what was found. Directories are
scanned recursively. Purely informational; nothing is modified.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Close()

	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return err
		}
		if fi.IsDir() {
			found, err := pipeline.Discover(arg, cfg.Extension)
			if err != nil {
				return err
			}
			paths = append(paths, found...)
		} else {
			paths = append(paths, arg)
		}
	}
	if len(paths) == 0 {
		log.Warn("Nothing to inspect")
		return nil
	}

	failed := 0
	for _, path := range paths {
		report, err := inspect.File(path)
		if err != nil {
			log.Error("%s: %v", path, err)
			failed++
			continue
		}
		tools := report.Tools()
		if len(tools) == 0 {
			fmt.Printf("%s: no known tool fingerprints\n", path)
			continue
		}
		fmt.Printf("%s: %s\n", path, strings.Join(tools, ", "))
		if cfg.Verbose {
			for _, f := range report.Findings {
				log.Debug(true, "  %s: %s", f.Tool, f.Marker)
			}
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be inspected", failed, len(paths))
	}
	return nil
}
