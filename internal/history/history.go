// Package history persists applied renames in a small bbolt journal so
// the most recent batch can be undone. Journaling is best-effort by
// contract: callers log and continue on error rather than failing a
// rename over bookkeeping.
package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var bucketRenames = []byte("renames")

// batchIDFormat keeps all nine fractional digits so ids of equal length
// compare chronologically as plain strings. RFC3339Nano would not: it
// drops trailing zeros, and a whole-second id then sorts after a later
// id within the same second ('Z' > '.').
const batchIDFormat = "2006-01-02T15:04:05.000000000Z07:00"

// NewBatchID returns the id shared by every entry of one run. Later run,
// lexicographically greater id.
func NewBatchID(t time.Time) string {
	return t.UTC().Format(batchIDFormat)
}

// Entry records one applied rename.
type Entry struct {
	Source    string    `json:"source"`
	Dest      string    `json:"dest"`
	Batch     string    `json:"batch"` // batch id, shared by all entries of one run
	AppliedAt time.Time `json:"applied_at"`
}

// Journal is a handle to the rename history database.
type Journal struct {
	db *bolt.DB
}

// Open opens (creating if needed) the journal at path.
func Open(path string) (*Journal, error) {
	if path == "" {
		return nil, errors.New("history: missing path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketRenames)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	if j.db == nil {
		return nil
	}
	return j.db.Close()
}

// Record stores one entry, keyed by destination path.
func (j *Journal) Record(e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRenames).Put([]byte(e.Dest), data)
	})
}

// LastBatch returns every entry belonging to the most recent batch.
// Batch ids from [NewBatchID] sort chronologically as strings, so "most
// recent" is the maximum id seen.
func (j *Journal) LastBatch() ([]Entry, error) {
	var entries []Entry
	err := j.db.View(func(tx *bolt.Tx) error {
		latest := ""
		all := []Entry{}
		err := tx.Bucket(bucketRenames).ForEach(func(_, v []byte) error {
			var e Entry
			if err := json.Unmarshal(v, &e); err != nil {
				return err
			}
			all = append(all, e)
			if e.Batch > latest {
				latest = e.Batch
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, e := range all {
			if e.Batch == latest {
				entries = append(entries, e)
			}
		}
		return nil
	})
	return entries, err
}

// Remove deletes the entry for dest, typically after it has been undone.
func (j *Journal) Remove(dest string) error {
	return j.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketRenames).Delete([]byte(dest))
	})
}
