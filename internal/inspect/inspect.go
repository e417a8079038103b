// Package inspect scans EPUB containers for traces of the tool that
// produced them. The scan is informational only: it reports what it finds
// and never affects renaming.
package inspect

import (
	"archive/zip"
	"fmt"
	"strings"

	"github.com/alexrwlaw/EPUBRenamer/internal/metadata"
)

// Finding is one recognized tool trace.
type Finding struct {
	Tool   string // display name of the producing tool
	Marker string // the substring that matched
}

// Report lists the findings for one file.
type Report struct {
	Path     string
	Findings []Finding
}

// Tools returns the distinct tool names, in fingerprint table order.
func (r Report) Tools() []string {
	seen := make(map[string]bool, len(r.Findings))
	var tools []string
	for _, f := range r.Findings {
		if !seen[f.Tool] {
			seen[f.Tool] = true
			tools = append(tools, f.Tool)
		}
	}
	return tools
}

// fingerprint pairs a tool with a lowercase marker substring and the
// places it may appear. Fingerprints are evaluated in order; every match
// is reported.
type fingerprint struct {
	tool    string
	marker  string
	inOPF   bool // match against the OPF package document
	inNames bool // match against container entry names
}

var fingerprints = []fingerprint{
	{"calibre", "calibre", true, true},
	{"Sigil", "sigil", true, true},
	{"Pandoc", "pandoc", true, false},
	{"Adobe InDesign", "indesign", true, false},
	{"Microsoft Word", "microsoft word", true, false},
	{"Google Docs", "google docs", true, false},
	{"Apple Pages", "com.apple", true, true},
	{"Vellum", "vellum", true, true},
}

// File opens an EPUB and scans it for tool fingerprints.
func File(path string) (Report, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return Report{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer zr.Close()

	r := Scan(&zr.Reader)
	r.Path = path
	return r, nil
}

// Scan runs the fingerprint table over an open container. A container
// whose OPF cannot be located is still scanned by entry name.
func Scan(zr *zip.Reader) Report {
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, strings.ToLower(f.Name))
	}
	joinedNames := strings.Join(names, "\n")

	opfText := ""
	if opf, err := metadata.ReadOPF(zr); err == nil {
		opfText = strings.ToLower(string(opf))
	}

	var r Report
	for _, fp := range fingerprints {
		if fp.inOPF && opfText != "" && strings.Contains(opfText, fp.marker) {
			r.Findings = append(r.Findings, Finding{Tool: fp.tool, Marker: fp.marker})
			continue
		}
		if fp.inNames && strings.Contains(joinedNames, fp.marker) {
			r.Findings = append(r.Findings, Finding{Tool: fp.tool, Marker: fp.marker})
		}
	}
	return r
}
