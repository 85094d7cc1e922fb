// Package store persists progress snapshots as JSON files in the data
// directory, one file per pattern.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"

	"stitch-tracker/internal/progress"
)

// FileStore reads and writes progress snapshots under a single directory.
type FileStore struct {
	dir string
}

// New creates the data directory if needed and returns a store over it.
func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: create %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(patternID string) string {
	return filepath.Join(s.dir, patternID+".progress.json")
}

// Load returns the saved progress for the pattern and its snapshot time in
// Unix milliseconds. A missing file is (nil, 0, nil), not an error.
func (s *FileStore) Load(patternID string) (*progress.Progress, int64, error) {
	data, err := os.ReadFile(s.path(patternID))
	if os.IsNotExist(err) {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("store: read %s: %w", patternID, err)
	}

	var snap progress.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, 0, fmt.Errorf("store: decode %s: %w", patternID, err)
	}
	p, err := progress.FromSnapshot(&snap)
	if err != nil {
		return nil, 0, fmt.Errorf("store: %w", err)
	}
	return p, snap.UpdatedAt, nil
}

// Save writes the progress synchronously.
func (s *FileStore) Save(p *progress.Progress) error {
	snap := p.Snapshot(time.Now())
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(p.PatternID), data, 0o644)
}

// SaveAsync snapshots the progress now and writes it in the background.
// The caller never blocks on the write; a failure is logged and the next
// mutation's save (or remote reconciliation) covers the loss.
func (s *FileStore) SaveAsync(p *progress.Progress) {
	clone := p.Clone()
	go func() {
		if err := s.Save(clone); err != nil {
			logrus.WithError(err).WithField("pattern", clone.PatternID).
				Warn("background progress save failed")
		}
	}()
}
