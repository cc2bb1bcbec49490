package domain

import "time"

// CardState is the per-card algorithm state. It is mutated only by an
// algorithm implementation during a review.
type CardState struct {
	// EaseFactor determines how quickly review intervals grow. Never
	// drops below 1.3.
	EaseFactor float64 `json:"ease_factor"`
	// Interval is the number of days to wait before the next review.
	Interval uint64 `json:"interval"`
	// Repetitions is the number of successful reviews since the last reset.
	Repetitions uint64 `json:"repetitions"`
	// FailedCount is the number of failed reviews over the card's lifetime.
	FailedCount uint64 `json:"failed_count"`
}

// NewCardState returns the default state for a freshly discovered card.
func NewCardState() CardState {
	return CardState{EaseFactor: 2.5}
}

// CardEntry binds a Card to its algorithm state plus review metadata.
// Entries are created once, on first discovery of a card.
type CardEntry struct {
	Added       time.Time  `json:"added"`
	Card        Card       `json:"card"`
	LastRevised *time.Time `json:"last_revised"`
	Leech       bool       `json:"leech"`
	Orphan      bool       `json:"orphan"`
	ReviseCount uint64     `json:"revise_count"`
	State       CardState  `json:"state"`
}

// NewCardEntry creates the initial entry for a newly discovered card.
func NewCardEntry(card Card) CardEntry {
	return CardEntry{
		Added: time.Now().UTC(),
		Card:  card,
		State: NewCardState(),
	}
}
