package srs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/carddown/internal/domain"
)

func roundTo(f float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(f*factor) / factor
}

func TestNew(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input string
		want  string
	}{
		{"sm2", "SM2"},
		{"SM2", "SM2"},
		{"sm5", "SM5"},
		{"Simple8", "Simple8"},
	}
	for _, tc := range testCases {
		algo, err := New(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, algo.Name())
	}

	_, err := New("sm18")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestNewEaseFactor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		quality domain.Quality
		ef      float64
		want    float64
	}{
		{"perfect gains a tenth", domain.Perfect, 2.5, 2.60},
		{"hesitation is neutral", domain.CorrectWithHesitation, 2.5, 2.50},
		{"difficulty loses a bit", domain.CorrectWithDifficulty, 2.5, 2.36},
		{"easy to recall", domain.IncorrectButEasyToRecall, 2.5, 2.18},
		{"remembered", domain.IncorrectButRemembered, 2.5, 1.96},
		{"forgotten", domain.IncorrectAndForgotten, 2.5, 1.70},
		{"clamped at the floor", domain.IncorrectAndForgotten, 1.3, 1.30},
		{"clamped from below the floor", domain.IncorrectAndForgotten, 1.0, 1.30},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, roundTo(newEaseFactor(tc.quality, tc.ef), 2))
		})
	}
}

func TestEaseFactorNeverDropsBelowFloor(t *testing.T) {
	t.Parallel()

	ef := 1.3
	for i := 0; i < 100; i++ {
		ef = newEaseFactor(domain.IncorrectAndForgotten, ef)
		assert.GreaterOrEqual(t, ef, 1.3)
	}
	assert.Equal(t, 1.3, ef)
}

func TestIntervalFromFloat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input float64
		want  uint64
	}{
		{"rounds down", 2.4, 2},
		{"half rounds away from zero", 2.5, 3},
		{"rounds up", 2.6, 3},
		{"negative collapses to zero", -3.0, 0},
		{"zero", 0, 0},
		{"NaN collapses to zero", math.NaN(), 0},
		{"saturates on overflow", math.MaxFloat64, math.MaxUint64},
		{"saturates on infinity", math.Inf(1), math.MaxUint64},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, intervalFromFloat(tc.input))
		})
	}
}
