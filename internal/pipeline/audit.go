package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"time"
)

var auditHeader = []string{"time", "source", "proposed", "status", "detail"}

// AuditLog appends one CSV row per processed item. Rows are flushed on
// every write so a crash mid-batch still leaves a usable log.
type AuditLog struct {
	f *os.File
	w *csv.Writer
}

// OpenAudit opens (creating if needed) the audit CSV at path, writing the
// header row only when the file is new.
func OpenAudit(path string) (*AuditLog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	a := &AuditLog{f: f, w: csv.NewWriter(f)}
	if fi, err := f.Stat(); err == nil && fi.Size() == 0 {
		if err := a.write(auditHeader); err != nil {
			f.Close()
			return nil, err
		}
	}
	return a, nil
}

// Write appends one item row.
func (a *AuditLog) Write(source, proposed, status, detail string) error {
	return a.write([]string{
		time.Now().Format(time.RFC3339), source, proposed, status, detail,
	})
}

func (a *AuditLog) write(row []string) error {
	if err := a.w.Write(row); err != nil {
		return err
	}
	a.w.Flush()
	return a.w.Error()
}

// Close flushes and closes the underlying file.
func (a *AuditLog) Close() error {
	a.w.Flush()
	err := a.w.Error()
	if cerr := a.f.Close(); err == nil {
		err = cerr
	}
	return err
}
