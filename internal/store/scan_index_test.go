package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanIndexChanged(t *testing.T) {
	t.Parallel()

	idx := ScanIndex{}
	now := time.Now()

	assert.True(t, idx.Changed("/notes/a.md", now), "unknown path is always changed")

	idx.Stamp("/notes/a.md", now)
	assert.False(t, idx.Changed("/notes/a.md", now))
	assert.False(t, idx.Changed("/notes/a.md", now.Add(-time.Hour)))
	assert.True(t, idx.Changed("/notes/a.md", now.Add(time.Second)))
}

func TestScanIndexStoreRoundTrip(t *testing.T) {
	t.Parallel()

	s := NewScanIndexStore(filepath.Join(t.TempDir(), "scan-index.json"))

	idx := ScanIndex{}
	idx.Stamp("/notes/a.md", time.Unix(1700000000, 0))
	idx.Stamp("/notes/b.md", time.Unix(1700000100, 0))
	require.NoError(t, s.Save(idx))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, idx, loaded)
}

func TestScanIndexStoreTolerantLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	idx, err := NewScanIndexStore(filepath.Join(dir, "missing.json")).Load()
	require.NoError(t, err)
	assert.Empty(t, idx)

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("[oops"), 0o644))
	idx, err = NewScanIndexStore(corrupt).Load()
	require.NoError(t, err)
	assert.Empty(t, idx)
}
