// Package lockfile provides the cross-process exclusivity guard. The lock
// is an atomically created zero-byte marker file; its presence alone is the
// signal. Acquire once at startup and defer Release so every exit path,
// success or failure, removes the marker.
package lockfile

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// ErrLockHeld is returned when another carddown process already holds the lock.
var ErrLockHeld = errors.New("another instance is already running")

// Lock represents a held instance lock.
type Lock struct {
	path string
}

// Acquire creates the marker file, failing with ErrLockHeld if it already
// exists. With force set, any stale marker is removed first; this bypasses
// the exclusivity guarantee and is meant for recovering from a crash that
// left the marker behind.
func Acquire(path string, force bool) (*Lock, error) {
	if force {
		if err := os.Remove(path); err == nil {
			slog.Warn("removed stale lock file", "path", path)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("%w (lock file %s; use --force to override)", ErrLockHeld, path)
		}
		return nil, fmt.Errorf("failed to create lock file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close lock file %s: %w", path, err)
	}

	return &Lock{path: path}, nil
}

// Release removes the marker file. Safe to call exactly once per Acquire,
// typically via defer.
func (l *Lock) Release() error {
	if err := os.Remove(l.path); err != nil {
		return fmt.Errorf("failed to remove lock file %s: %w", l.path, err)
	}
	return nil
}
