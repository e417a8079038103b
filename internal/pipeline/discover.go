package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks sourceDir, collects files with the configured extension
// (case-insensitive), prunes hidden directories, and returns the paths
// sorted lexicographically for deterministic processing order.
func Discover(sourceDir, ext string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != sourceDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
