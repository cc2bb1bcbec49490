package scanner

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/carddown/internal/store"
)

func TestCollectFilesSingleFile(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "notes.txt", "x")

	// A file root bypasses the extension filter entirely.
	files, err := CollectFiles(path, []string{"md"})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestCollectFilesWalksRecursively(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	sub := filepath.Join(root, "deep", "deeper")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.txt"), []byte("x"), 0o644))

	files, err := CollectFiles(root, []string{"md"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.md"),
		filepath.Join(sub, "b.md"),
	}, files)

	files, err = CollectFiles(root, nil)
	require.NoError(t, err)
	assert.Len(t, files, 3, "empty filter admits everything")
}

func TestCollectFilesMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := CollectFiles(filepath.Join(t.TempDir(), "absent"), nil)
	assert.Error(t, err)
}

func TestScanFull(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "notes.md", "Q: A #flashcard\n")
	idx := store.ScanIndex{}

	cards, err := Scan([]string{path}, idx, true)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
	assert.Contains(t, idx, path, "every considered file is stamped")
}

func TestScanIncrementalSkipsUnchanged(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "notes.md", "Q: A #flashcard\n")
	idx := store.ScanIndex{}

	cards, err := Scan([]string{path}, idx, true)
	require.NoError(t, err)
	require.Len(t, cards, 1)

	cards, err = Scan([]string{path}, idx, false)
	require.NoError(t, err)
	assert.Empty(t, cards, "unchanged files are not re-parsed")

	// Bump the mtime past the stamped second; the file is parsed again.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))
	cards, err = Scan([]string{path}, idx, false)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}

func TestScanFullIgnoresIndex(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "notes.md", "Q: A #flashcard\n")
	idx := store.ScanIndex{}

	_, err := Scan([]string{path}, idx, true)
	require.NoError(t, err)

	cards, err := Scan([]string{path}, idx, true)
	require.NoError(t, err)
	assert.Len(t, cards, 1, "a full scan re-parses everything")
}
