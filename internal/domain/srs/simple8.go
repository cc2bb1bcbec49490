package srs

import (
	"math"

	"github.com/phrazzld/carddown/internal/domain"
)

// Simple8 is the eight-parameter empirical model. First intervals shrink
// with the card's historical failure count, and later intervals grow by a
// factor derived from the session-wide mean quality rather than a per-card
// ease factor.
type Simple8 struct{}

// Name implements the Algorithm interface.
func (Simple8) Name() string { return "Simple8" }

// UpdateState implements the Algorithm interface.
func (Simple8) UpdateState(quality domain.Quality, state *domain.CardState, global *domain.GlobalState) {
	switch {
	case quality.Failed():
		state.Repetitions = 0
		state.Interval = 0
		state.FailedCount++
	case state.Repetitions == 0 || state.Interval == 0:
		state.Interval = intervalFromFloat(firstInterval(state.FailedCount))
		state.Repetitions++
	default:
		q := float64(quality)
		if global.MeanQ != nil {
			q = *global.MeanQ
		}
		factor := intervalFactor(qualityToEase(q), state.Repetitions)
		state.Interval = intervalFromFloat(float64(state.Interval) * factor)
		state.Repetitions++
	}
}

// firstInterval returns the optimal first interval for a card that has
// failed totalFailures times.
func firstInterval(totalFailures uint64) float64 {
	return 2.4849 * math.Exp(-0.057*float64(totalFailures))
}

// intervalFactor computes the interval multiplier for the given ease value,
// decaying toward 1.2 as repetitions grow. The log term is defined as zero
// at repetitions == 0, making the factor the ease itself.
func intervalFactor(ease float64, repetitions uint64) float64 {
	logR := 0.0
	if repetitions > 0 {
		logR = math.Log2(float64(repetitions))
	}
	return 1.2 + (ease-1.2)*math.Pow(0.5, logR)
}

// qualityToEase maps a (possibly fractional) quality score to an ease value
// through a quartic fit. The constants are part of the model, not tunables.
func qualityToEase(q float64) float64 {
	q2 := q * q
	q3 := q2 * q
	q4 := q3 * q
	return 0.0542*q4 - 0.4848*q3 + 1.4916*q2 - 1.2403*q + 1.4515
}
