package store

import (
	"fmt"
	"os"
)

// atomicWriteFile writes data to a temporary file beside the target, syncs
// it, and atomically renames it over the target. A stale temp file left by a
// previous crash is removed first. Readers never observe a partially written
// target.
func atomicWriteFile(path string, data []byte) error {
	tmpPath := path + ".tmp"

	// Clean up any stale temp file from an earlier crash.
	_ = os.Remove(tmpPath)

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file %s: %w", tmpPath, err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write temp file %s: %w", tmpPath, err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to sync temp file %s: %w", tmpPath, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close temp file %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename %s to %s: %w", tmpPath, path, err)
	}
	return nil
}
