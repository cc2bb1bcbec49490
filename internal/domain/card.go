package domain

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"

	"lukechampine.com/blake3"
)

// Card-specific validation errors
var (
	// ErrInvalidCardID is returned when a card ID is not a 64-character hex string.
	ErrInvalidCardID = errors.New("card ID must be a 256-bit hex string")

	// ErrCardPromptEmpty is returned when a card's prompt is empty.
	ErrCardPromptEmpty = errors.New("card prompt cannot be empty")
)

// CardID is the content hash identifying a card. It is computed over the
// canonicalized card text, so it is stable while the text is unchanged and
// changes whenever the card is edited.
type CardID [32]byte

// NewCardID computes the identity hash for the given canonical card text.
func NewCardID(text string) CardID {
	return CardID(blake3.Sum256([]byte(text)))
}

// ParseCardID decodes a card ID from its hex representation.
// Returns ErrInvalidCardID if the input is not a 64-character hex string.
func ParseCardID(s string) (CardID, error) {
	var id CardID
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != len(id) {
		return CardID{}, fmt.Errorf("%w: %q", ErrInvalidCardID, s)
	}
	copy(id[:], raw)
	return id, nil
}

// String returns the lowercase hex representation of the ID.
func (id CardID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler so IDs serialize as hex strings.
func (id CardID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *CardID) UnmarshalText(text []byte) error {
	parsed, err := ParseCardID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Card represents a flashcard recognized in a source file. It is produced by
// the scanner and treated as an immutable value: when the source text changes
// the card is replaced wholesale under a new ID.
type Card struct {
	ID       CardID   `json:"id"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Prompt   string   `json:"prompt"`
	Response []string `json:"response"`
	Tags     []string `json:"tags"`
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c *Card) Validate() error {
	if c.ID == (CardID{}) {
		return ErrInvalidCardID
	}
	if c.Prompt == "" {
		return ErrCardPromptEmpty
	}
	return nil
}

// Equal reports whether two cards carry identical content, including their
// source location. Tags are compared as sets; the scanner emits them sorted.
func (c *Card) Equal(other *Card) bool {
	return c.ID == other.ID &&
		c.File == other.File &&
		c.Line == other.Line &&
		c.Prompt == other.Prompt &&
		slices.Equal(c.Response, other.Response) &&
		slices.Equal(c.Tags, other.Tags)
}

// HasAnyTag reports whether the card carries at least one of the given tags.
// An empty filter matches nothing; callers treat an empty filter as "no filter"
// before getting here.
func (c *Card) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if slices.Contains(c.Tags, t) {
			return true
		}
	}
	return false
}
