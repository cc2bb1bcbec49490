// Package review runs a revise session over a scheduled card batch. The
// session engine owns grading — the running mean-quality update, the
// algorithm invocation, leech marking — and guarantees the completion
// callback fires exactly once on any exit path. The terminal front end in
// this package is one consumer; the engine itself is UI-agnostic.
package review

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/carddown/internal/domain"
	"github.com/phrazzld/carddown/internal/domain/srs"
)

// Session errors.
var (
	// ErrSessionFinished is returned when grading is attempted after the
	// session has flushed its results.
	ErrSessionFinished = errors.New("session already finished")

	// ErrNoCurrentCard is returned when grading is attempted with no card
	// left to grade.
	ErrNoCurrentCard = errors.New("no card left to grade")
)

// CommitFunc is the single-invocation completion callback. It receives the
// session's card batch and the updated global state; in cram mode the caller
// supplies a callback that suppresses persistence.
type CommitFunc func(entries []domain.CardEntry, global *domain.GlobalState) error

// Session drives one revise pass over a scheduled batch of cards.
type Session struct {
	id             uuid.UUID
	cards          []domain.CardEntry
	algorithm      srs.Algorithm
	global         *domain.GlobalState
	leechThreshold uint64
	commit         CommitFunc
	current        int
	finished       bool
}

// NewSession creates a session over the given batch. The batch is owned by
// the session from here on; the caller reads results through the commit
// callback. A leechThreshold of zero disables leech marking.
func NewSession(
	cards []domain.CardEntry,
	algorithm srs.Algorithm,
	global *domain.GlobalState,
	leechThreshold uint64,
	commit CommitFunc,
) *Session {
	return &Session{
		id:             uuid.New(),
		cards:          cards,
		algorithm:      algorithm,
		global:         global,
		leechThreshold: leechThreshold,
		commit:         commit,
	}
}

// ID returns the session's identifier, used for log correlation.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Current returns the card up for review, or false when the batch is done.
func (s *Session) Current() (domain.CardEntry, bool) {
	if s.current >= len(s.cards) {
		return domain.CardEntry{}, false
	}
	return s.cards[s.current], true
}

// Remaining returns how many cards are left to grade, including the current one.
func (s *Session) Remaining() int {
	return len(s.cards) - s.current
}

// Grade applies a quality score to the current card and advances. The
// running mean is updated before the algorithm runs, once per reviewed card,
// whichever algorithm is active.
func (s *Session) Grade(quality domain.Quality) error {
	if s.finished {
		return ErrSessionFinished
	}
	if !quality.Valid() {
		return domain.ErrInvalidQuality
	}
	if s.current >= len(s.cards) {
		return ErrNoCurrentCard
	}

	entry := &s.cards[s.current]
	now := time.Now().UTC()

	s.global.RecordQuality(quality)
	s.algorithm.UpdateState(quality, &entry.State, s.global)

	entry.LastRevised = &now
	entry.ReviseCount++
	// A leech flag is sticky: it never auto-clears, only an explicit
	// delete removes the card.
	if s.leechThreshold > 0 && entry.State.FailedCount >= s.leechThreshold {
		entry.Leech = true
	}

	slog.Debug("graded card",
		"session", s.id,
		"card", entry.Card.ID,
		"quality", quality.String(),
		"interval", entry.State.Interval)

	s.current++
	return nil
}

// Finish flushes the session through the completion callback. The first call
// wins; later calls are no-ops, so it is safe to invoke from a deferred
// cleanup as well as the happy path.
func (s *Session) Finish() error {
	if s.finished {
		return nil
	}
	s.finished = true

	slog.Info("revise session finished",
		"session", s.id,
		"algorithm", s.algorithm.Name(),
		"graded", s.current,
		"total", len(s.cards))

	return s.commit(s.cards, s.global)
}
