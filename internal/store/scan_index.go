package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// ScanIndex maps absolute file paths to the modification time (epoch
// seconds) last seen for them, letting incremental scans skip unchanged
// files.
type ScanIndex map[string]int64

// Changed reports whether the file at path has a newer modification time
// than the index remembers. Unknown paths always count as changed.
func (idx ScanIndex) Changed(path string, modTime time.Time) bool {
	last, ok := idx[path]
	return !ok || modTime.Unix() > last
}

// Stamp records the file's current modification time. Every file considered
// by a scan is restamped, changed or not, keeping subsequent scans cheap.
func (idx ScanIndex) Stamp(path string, modTime time.Time) {
	idx[path] = modTime.Unix()
}

// ScanIndexStore persists the scan index as one local JSON object. A missing
// or corrupt index degrades to empty, which simply makes the next scan
// behave like a first-time full scan for indexing purposes.
type ScanIndexStore struct {
	path string
}

// NewScanIndexStore returns a store persisting to the given file path.
func NewScanIndexStore(path string) *ScanIndexStore {
	return &ScanIndexStore{path: path}
}

// Load reads the scan index, degrading to empty on a missing or unparsable
// file.
func (s *ScanIndexStore) Load() (ScanIndex, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ScanIndex{}, nil
		}
		return nil, fmt.Errorf("failed to read scan index %s: %w", s.path, err)
	}

	idx := ScanIndex{}
	if err := json.Unmarshal(data, &idx); err != nil {
		slog.Warn("scan index corrupted, starting empty", "path", s.path, "error", err)
		return ScanIndex{}, nil
	}
	return idx, nil
}

// Save rewrites the scan-index file.
func (s *ScanIndexStore) Save(idx ScanIndex) error {
	data, err := json.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to serialize scan index: %w", err)
	}
	if err := atomicWriteFile(s.path, data); err != nil {
		return fmt.Errorf("failed to write scan index %s: %w", s.path, err)
	}
	return nil
}
