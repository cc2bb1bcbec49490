package srs

import "github.com/phrazzld/carddown/internal/domain"

// SM2 is the classic two-parameter model. Successful reviews walk the fixed
// 1, 6, round(interval*ease) progression; failures reset the card to the
// start of the progression without touching its ease factor.
type SM2 struct{}

// Name implements the Algorithm interface.
func (SM2) Name() string { return "SM2" }

// UpdateState implements the Algorithm interface.
func (SM2) UpdateState(quality domain.Quality, state *domain.CardState, _ *domain.GlobalState) {
	if quality.Failed() {
		state.Repetitions = 0
		state.Interval = 0
		state.FailedCount++
		return
	}

	switch state.Repetitions {
	case 0:
		state.Interval = 1
	case 1:
		state.Interval = 6
	default:
		state.Interval = intervalFromFloat(float64(state.Interval) * state.EaseFactor)
	}
	state.Repetitions++
	state.EaseFactor = newEaseFactor(quality, state.EaseFactor)
}
