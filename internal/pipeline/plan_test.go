package pipeline

import (
	"archive/zip"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexrwlaw/EPUBRenamer/internal/config"
	"github.com/alexrwlaw/EPUBRenamer/internal/logging"
)

const containerXML = `<?xml version="1.0"?>
<container version="1.0" xmlns="urn:oasis:names:tc:opendocument:xmlns:container">
  <rootfiles>
    <rootfile full-path="content.opf" media-type="application/oebps-package+xml"/>
  </rootfiles>
</container>`

// writeEPUB drops a minimal but valid EPUB at path.
func writeEPUB(t *testing.T, path, title string, authors ...string) {
	t.Helper()

	var opf bytes.Buffer
	opf.WriteString(`<?xml version="1.0"?>
<package xmlns="http://www.idpf.org/2007/opf" version="3.0">
  <metadata xmlns:dc="http://purl.org/dc/elements/1.1/">
`)
	fmt.Fprintf(&opf, "    <dc:title>%s</dc:title>\n", title)
	for _, a := range authors {
		fmt.Fprintf(&opf, "    <dc:creator>%s</dc:creator>\n", a)
	}
	opf.WriteString(`  </metadata>
</package>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range map[string]string{
		"META-INF/container.xml": containerXML,
		"content.opf":            opf.String(),
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.NoHistory = true
	return &cfg
}

func testLogger(t *testing.T, cfg *config.Config) *logging.Logger {
	t.Helper()
	log, err := logging.NewLogger(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return log
}

func TestBuildPlanFromMetadata(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "download-1234.epub")
	writeEPUB(t, src, "the left hand of darkness", "ursula k. le guin")

	cfg := testConfig(t)
	log := testLogger(t, cfg)

	plan := BuildPlan(cfg, log, []string{src}, nil)
	if len(plan) != 1 {
		t.Fatalf("plan size = %d, want 1", len(plan))
	}
	got := plan[0].Name.FileName()
	want := "The Left Hand of Darkness - Ursula K. le Guin.epub"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
	if plan[0].Suffixed {
		t.Error("unexpected collision suffix")
	}
}

func TestBuildPlanFilenameFallback(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "my great novel.epub")
	if err := os.WriteFile(src, []byte("not a zip"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := testConfig(t)
	log := testLogger(t, cfg)

	plan := BuildPlan(cfg, log, []string{src}, nil)
	if len(plan) != 1 {
		t.Fatalf("plan size = %d, want 1", len(plan))
	}
	if plan[0].Note == "" {
		t.Error("expected a fallback note")
	}
	got := plan[0].Name.FileName()
	want := "My Great Novel.epub"
	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

func TestBuildPlanCollisionSuffixes(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.epub")
	b := filepath.Join(dir, "b.epub")
	writeEPUB(t, a, "Dune", "Frank Herbert")
	writeEPUB(t, b, "Dune", "Frank Herbert")

	cfg := testConfig(t)
	log := testLogger(t, cfg)

	plan := BuildPlan(cfg, log, []string{a, b}, nil)
	if got := plan[0].Name.FileName(); got != "Dune - Frank Herbert.epub" {
		t.Errorf("first = %q", got)
	}
	if got := plan[1].Name.FileName(); got != "Dune - Frank Herbert (1).epub" {
		t.Errorf("second = %q", got)
	}
	if !plan[1].Suffixed {
		t.Error("second item should be marked suffixed")
	}
}

func TestBuildPlanDestProbe(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.epub")
	writeEPUB(t, src, "Dune", "Frank Herbert")

	cfg := testConfig(t)
	log := testLogger(t, cfg)

	exists := func(name string) bool { return name == "Dune - Frank Herbert.epub" }
	plan := BuildPlan(cfg, log, []string{src}, exists)
	if got := plan[0].Name.FileName(); got != "Dune - Frank Herbert (1).epub" {
		t.Errorf("FileName = %q", got)
	}
}

func TestBuildPlanAuthorOrder(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.epub")
	writeEPUB(t, src, "Persuasion", "Austen, Jane")

	cfg := testConfig(t)
	cfg.AuthorOrder = config.OrderLastFirst
	log := testLogger(t, cfg)

	plan := BuildPlan(cfg, log, []string{src}, nil)
	if got := plan[0].Name.FileName(); got != "Persuasion - Austen, Jane.epub" {
		t.Errorf("FileName = %q", got)
	}
}
