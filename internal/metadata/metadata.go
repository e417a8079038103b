package metadata

import (
	"archive/zip"
	"fmt"
)

// RawMetadata is the bibliographic tuple the normalization pipeline
// consumes. Either field may be empty; the struct is treated as immutable
// input by everything downstream.
type RawMetadata struct {
	Title   string
	Authors []string
}

// ReadFile opens an EPUB file and extracts its metadata.
func ReadFile(path string) (RawMetadata, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return RawMetadata{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()
	return Read(&zr.Reader)
}

// Read extracts metadata from an already-open EPUB container.
func Read(zr *zip.Reader) (RawMetadata, error) {
	data, err := ReadOPF(zr)
	if err != nil {
		return RawMetadata{}, err
	}
	return parseOPF(data)
}
