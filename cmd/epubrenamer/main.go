package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "epubrenamer",
	Short: "EPUBRenamer - normalize EPUB filenames from their metadata",
	Long: `EPUBRenamer scans a directory of EPUB files, reads title and authors
from each book's OPF metadata, and copies or moves the files into a
destination directory under clean, collision-free names like

  The Left Hand of Darkness - Ursula K. le Guin.epub

Names are sanitized for cross-platform use, smart title-cased, and
deduplicated with " (n)" suffixes when they would collide.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Persistent flags, shared by every subcommand.
var (
	configPath string
	verbose    bool
	colorMode  string
	logFile    string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to YAML config file (default ~/.epubrenamer/config.yaml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVar(&colorMode, "color", "", "color output: auto, always, never")
	pf.StringVar(&logFile, "log-file", "", "append plain log lines to this file")

	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("epubrenamer v%s\n", version)
	},
}
