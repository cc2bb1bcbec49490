// Package srs implements the spaced-repetition algorithm engine. Three
// algorithms are available behind the Algorithm interface: the classic
// two-parameter SM2 model, the SM5 model with a learned optimal-factor
// table, and the empirically fitted Simple8 model.
package srs

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/phrazzld/carddown/internal/domain"
)

// ErrUnknownAlgorithm is returned when an algorithm name does not match any
// of the implemented variants.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// Algorithm computes a card's next review interval from a quality score.
// Implementations mutate the per-card state in place; SM5 additionally
// updates the global optimal-factor matrix.
type Algorithm interface {
	UpdateState(quality domain.Quality, state *domain.CardState, global *domain.GlobalState)
	Name() string
}

// New returns the algorithm registered under the given name
// (case-insensitive: "sm2", "sm5" or "simple8").
func New(name string) (Algorithm, error) {
	switch strings.ToLower(name) {
	case "sm2":
		return SM2{}, nil
	case "sm5":
		return SM5{}, nil
	case "simple8":
		return Simple8{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// minEaseFactor is the floor below which an ease factor never drops.
const minEaseFactor = 1.3

// newEaseFactor applies the shared ease-factor recurrence used by SM2 and
// SM5: ef' = ef + 0.1 - (5-q)*(0.08 + (5-q)*0.02), clamped at 1.3.
func newEaseFactor(quality domain.Quality, easeFactor float64) float64 {
	q := float64(quality)
	newEF := easeFactor + 0.1 - (5.0-q)*(0.08+(5.0-q)*0.02)
	return math.Max(minEaseFactor, newEF)
}

// intervalFromFloat converts a computed interval to whole days, rounding
// half away from zero and saturating instead of overflowing on extreme
// inputs. NaN and negative values collapse to zero.
func intervalFromFloat(f float64) uint64 {
	if math.IsNaN(f) || f <= 0 {
		return 0
	}
	if f >= math.MaxUint64 {
		return math.MaxUint64
	}
	return uint64(math.Round(f))
}
