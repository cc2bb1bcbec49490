package srs

import "github.com/phrazzld/carddown/internal/domain"

// SM5 extends SM2 with a learned optimal-factor table kept in the global
// state. The table is updated on every review, success or failure; the
// per-card ease factor only moves on success. That asymmetry is part of the
// algorithm's definition, not an accident.
type SM5 struct{}

// Name implements the Algorithm interface.
func (SM5) Name() string { return "SM5" }

// UpdateState implements the Algorithm interface.
func (SM5) UpdateState(quality domain.Quality, state *domain.CardState, global *domain.GlobalState) {
	newEF := newEaseFactor(quality, state.EaseFactor)
	of := global.OptimalFactorMatrix.Factor(state.Repetitions, state.EaseFactor)
	global.OptimalFactorMatrix.SetFactor(state.Repetitions, newEF, newOptimalFactor(of, quality))

	if quality.Failed() {
		state.Repetitions = 0
		state.Interval = 0
		state.FailedCount++
		return
	}

	state.Interval = repetitionInterval(state.Interval, state.Repetitions, newEF, global.OptimalFactorMatrix)
	state.Repetitions++
	state.EaseFactor = newEF
}

// newOptimalFactor blends the current optimal factor halfway toward
// of*(0.72 + 0.07*q). The 0.5 fraction governs how quickly the learned
// spacing adapts, for all cards at once.
func newOptimalFactor(optimalFactor float64, quality domain.Quality) float64 {
	const fraction = 0.5
	q := float64(quality)
	candidate := optimalFactor * (0.72 + q*0.07)
	return (1.0-fraction)*optimalFactor + fraction*candidate
}

// repetitionInterval derives the next interval from the optimal factor
// stored for the card's new ease factor. The first repetition takes the
// factor itself as its interval in days.
func repetitionInterval(
	lastInterval, repetitions uint64,
	easeFactor float64,
	matrix domain.OptimalFactorMatrix,
) uint64 {
	of := matrix.Factor(repetitions, easeFactor)
	if repetitions == 0 {
		return intervalFromFloat(of)
	}
	return intervalFromFloat(float64(lastInterval) * of)
}
