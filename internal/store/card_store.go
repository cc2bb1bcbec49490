package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/carddown/internal/domain"
)

// CardMap is the in-memory form of the card database: card identity to entry.
type CardMap map[domain.CardID]domain.CardEntry

// CardStore is the durable card database backed by one local JSON file
// holding an array of card entries. The whole file is loaded into memory and
// rewritten wholesale on every mutation; cross-process safety comes from the
// instance lock, not from the store.
type CardStore struct {
	path string
}

// NewCardStore returns a store persisting to the given file path.
func NewCardStore(path string) *CardStore {
	return &CardStore{path: path}
}

// Path returns the location of the backing file.
func (s *CardStore) Path() string {
	return s.path
}

// Load reads the full card database. A missing file yields an empty store;
// an empty or unparsable file also yields an empty store with a warning,
// never a hard failure. Only a genuine read error is fatal.
func (s *CardStore) Load() (CardMap, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Info("no card store found, starting empty", "path", s.path)
			return CardMap{}, nil
		}
		return nil, fmt.Errorf("failed to read card store %s: %w", s.path, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return CardMap{}, nil
	}

	var entries []domain.CardEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("card store corrupted, starting empty", "path", s.path, "error", err)
		return CardMap{}, nil
	}

	db := make(CardMap, len(entries))
	for _, entry := range entries {
		db[entry.Card.ID] = entry
	}
	return db, nil
}

// Save rewrites the backing file with the full set of entries.
func (s *CardStore) Save(db CardMap) error {
	entries := make([]domain.CardEntry, 0, len(db))
	for _, entry := range db {
		entries = append(entries, entry)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize card store: %w", err)
	}
	if err := atomicWriteFile(s.path, data); err != nil {
		return fmt.Errorf("failed to write card store %s: %w", s.path, err)
	}
	return nil
}

// Delete removes the entry with the given id. Returns ErrCardNotFound if the
// id is absent; the on-disk store is unchanged on error.
func (s *CardStore) Delete(id domain.CardID) error {
	db, err := s.Load()
	if err != nil {
		return err
	}
	if _, ok := db[id]; !ok {
		return fmt.Errorf("%w: %s", ErrCardNotFound, id)
	}
	delete(db, id)
	return s.Save(db)
}

// UpsertMany applies the given entries in order, last write per id winning,
// and persists the result.
func (s *CardStore) UpsertMany(entries []domain.CardEntry) error {
	db, err := s.Load()
	if err != nil {
		return err
	}
	for _, entry := range entries {
		db[entry.Card.ID] = entry
	}
	return s.Save(db)
}

// Reconcile folds a freshly scanned card list into the store. Known cards
// have their content replaced when it changed (state and statistics are
// preserved) and their orphan flag cleared; unknown cards are inserted with
// default state. When full is true, every known id absent from found is
// marked orphan. Ids are never deleted automatically, and reconciling the
// same list twice leaves the store unchanged after the first application.
func (s *CardStore) Reconcile(found []domain.Card, full bool) error {
	if len(found) == 0 {
		slog.Info("no cards found, store unchanged")
		return nil
	}

	db, err := s.Load()
	if err != nil {
		return err
	}

	foundByID := make(map[domain.CardID]domain.Card, len(found))
	for _, card := range found {
		foundByID[card.ID] = card
	}

	var added, updated, orphaned, unorphaned int
	for id, card := range foundByID {
		entry, ok := db[id]
		if !ok {
			db[id] = domain.NewCardEntry(card)
			added++
			continue
		}
		if !entry.Card.Equal(&card) {
			entry.Card = card
			updated++
		}
		if entry.Orphan {
			entry.Orphan = false
			unorphaned++
		}
		db[id] = entry
	}

	if full {
		for id, entry := range db {
			if _, ok := foundByID[id]; ok || entry.Orphan {
				continue
			}
			entry.Orphan = true
			db[id] = entry
			orphaned++
		}
	}

	if added > 0 {
		slog.Info("inserted new cards", "count", added)
	}
	if updated > 0 {
		slog.Info("updated changed cards", "count", updated)
	}
	if unorphaned > 0 {
		slog.Info("unorphaned reappearing cards", "count", unorphaned)
	}
	if orphaned > 0 {
		slog.Warn("marked cards as orphaned", "count", orphaned)
	}

	return s.Save(db)
}
