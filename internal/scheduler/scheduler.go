// Package scheduler selects which cards a revise session presents. It
// filters a store snapshot down to due cards honoring tag, orphan, leech and
// cram-mode policies, then shuffles and caps the result. Session duration is
// enforced by the caller, not here.
package scheduler

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/phrazzld/carddown/internal/domain"
)

// ErrUnknownLeechPolicy is returned when a leech policy name is not recognized.
var ErrUnknownLeechPolicy = errors.New("unknown leech policy")

// LeechPolicy controls how leech cards are treated during selection.
type LeechPolicy int

const (
	// LeechSkip excludes leech cards from the session outright.
	LeechSkip LeechPolicy = iota
	// LeechWarn includes leech cards; the consumer must surface a warning.
	LeechWarn
)

// ParseLeechPolicy converts a policy name ("skip" or "warn") into a LeechPolicy.
func ParseLeechPolicy(s string) (LeechPolicy, error) {
	switch strings.ToLower(s) {
	case "skip":
		return LeechSkip, nil
	case "warn":
		return LeechWarn, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLeechPolicy, s)
	}
}

// String returns the policy's configuration name.
func (p LeechPolicy) String() string {
	if p == LeechWarn {
		return "warn"
	}
	return "skip"
}

// Options describe one selection pass.
type Options struct {
	// Tags restricts the session to cards carrying at least one of these
	// tags. Empty means no filter.
	Tags []string
	// IncludeOrphans admits cards whose source no longer yields them.
	IncludeOrphans bool
	// LeechPolicy controls leech handling.
	LeechPolicy LeechPolicy
	// Cram ignores scheduled due dates: a card is due once CramHours have
	// elapsed since its last review. Cram results are never persisted;
	// that suppression happens in the caller's completion callback.
	Cram bool
	// CramHours is the elapsed-hours threshold for cram mode.
	CramHours int
	// MaxCards caps the session size. Zero means no cap.
	MaxCards int
}

// Due reports whether the entry is eligible for review at the given time. A
// never-reviewed card is always due. In cram mode a card is due once the
// cram threshold has elapsed since its last review; otherwise it is due when
// its interval in days has passed.
func Due(entry domain.CardEntry, now time.Time, cram bool, cramHours int) bool {
	if entry.LastRevised == nil {
		return true
	}
	elapsed := now.Sub(*entry.LastRevised)
	if cram {
		return elapsed >= time.Duration(cramHours)*time.Hour
	}
	// Float compare keeps extreme saturated intervals from overflowing
	// the duration arithmetic.
	return elapsed.Hours() >= float64(entry.State.Interval)*24
}

// Select filters the snapshot down to the session batch. The returned
// leeches count is the number of leech cards admitted under LeechWarn, which
// the consumer must surface to the user. Pass a seeded rng for deterministic
// tests; nil falls back to the global source.
func Select(entries []domain.CardEntry, opts Options, now time.Time, rng *rand.Rand) (selected []domain.CardEntry, leeches int) {
	for _, entry := range entries {
		if !Due(entry, now, opts.Cram, opts.CramHours) {
			continue
		}
		if len(opts.Tags) > 0 && !entry.Card.HasAnyTag(opts.Tags) {
			continue
		}
		if entry.Orphan && !opts.IncludeOrphans {
			continue
		}
		if entry.Leech {
			if opts.LeechPolicy == LeechSkip {
				continue
			}
			leeches++
		}
		selected = append(selected, entry)
	}

	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	if opts.MaxCards > 0 && len(selected) > opts.MaxCards {
		selected = selected[:opts.MaxCards]
	}
	return selected, leeches
}
