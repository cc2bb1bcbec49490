package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/phrazzld/carddown/internal/domain"
	"github.com/phrazzld/carddown/internal/store"
)

// CollectFiles returns the candidate files under root, which may be a single
// file or a directory walked recursively. Extensions filter by suffix
// (without the dot); an empty filter admits everything.
func CollectFiles(root string, extensions []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if matchesExtension(path, extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return files, nil
}

func matchesExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return slices.Contains(extensions, ext)
}

// Scan parses the given files and returns every card found. An incremental
// scan (full == false) re-parses only files whose modification time exceeds
// the recorded one; a full scan parses everything. The index is restamped
// for every file considered either way, so the caller should persist it
// afterwards.
func Scan(files []string, idx store.ScanIndex, full bool) ([]domain.Card, error) {
	var cards []domain.Card
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if !full && !idx.Changed(path, info.ModTime()) {
			idx.Stamp(path, info.ModTime())
			continue
		}

		found, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		if len(found) > 0 {
			slog.Debug("parsed cards", "path", path, "count", len(found))
		}
		cards = append(cards, found...)
		idx.Stamp(path, info.ModTime())
	}
	return cards, nil
}
