package srs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/carddown/internal/domain"
)

func TestSM2PerfectProgression(t *testing.T) {
	t.Parallel()

	state := domain.NewCardState()
	global := domain.NewGlobalState()
	algo := SM2{}

	algo.UpdateState(domain.Perfect, &state, global)
	assert.Equal(t, uint64(1), state.Interval)
	assert.Equal(t, uint64(1), state.Repetitions)
	assert.Equal(t, 2.6, roundTo(state.EaseFactor, 2))

	algo.UpdateState(domain.Perfect, &state, global)
	assert.Equal(t, uint64(6), state.Interval)
	assert.Equal(t, uint64(2), state.Repetitions)
	assert.Equal(t, 2.7, roundTo(state.EaseFactor, 2))

	algo.UpdateState(domain.Perfect, &state, global)
	assert.Equal(t, uint64(16), state.Interval, "round(6*2.7)")
	assert.Equal(t, uint64(3), state.Repetitions)
	assert.Equal(t, 2.8, roundTo(state.EaseFactor, 2))
}

func TestSM2Failure(t *testing.T) {
	t.Parallel()

	state := domain.CardState{EaseFactor: 2.7, Interval: 16, Repetitions: 3}
	global := domain.NewGlobalState()
	algo := SM2{}

	algo.UpdateState(domain.IncorrectButRemembered, &state, global)
	assert.Zero(t, state.Interval)
	assert.Zero(t, state.Repetitions)
	assert.Equal(t, uint64(1), state.FailedCount)
	assert.Equal(t, 2.7, state.EaseFactor, "failure leaves the ease factor untouched")
}

func TestSM2EaseFactorFloor(t *testing.T) {
	t.Parallel()

	state := domain.NewCardState()
	global := domain.NewGlobalState()
	algo := SM2{}

	// Alternate failures and barely-passing reviews for a while; the ease
	// factor must never dip below 1.3 under any quality sequence.
	for i := 0; i < 50; i++ {
		algo.UpdateState(domain.IncorrectAndForgotten, &state, global)
		algo.UpdateState(domain.CorrectWithDifficulty, &state, global)
		assert.GreaterOrEqual(t, state.EaseFactor, 1.3)
	}
}

func TestSM2RecoveryAfterFailure(t *testing.T) {
	t.Parallel()

	state := domain.CardState{EaseFactor: 2.5, Interval: 30, Repetitions: 4}
	global := domain.NewGlobalState()
	algo := SM2{}

	algo.UpdateState(domain.IncorrectAndForgotten, &state, global)
	algo.UpdateState(domain.Perfect, &state, global)
	assert.Equal(t, uint64(1), state.Interval, "restart at the beginning of the progression")
	assert.Equal(t, uint64(1), state.Repetitions)
}
