package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualityFailed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		quality Quality
		failed  bool
	}{
		{IncorrectAndForgotten, true},
		{IncorrectButRemembered, true},
		{IncorrectButEasyToRecall, true},
		{CorrectWithDifficulty, false},
		{CorrectWithHesitation, false},
		{Perfect, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.failed, tc.quality.Failed(), "quality %s", tc.quality)
	}
}

func TestParseQuality(t *testing.T) {
	t.Parallel()

	for n := 0; n <= 5; n++ {
		q, err := ParseQuality(n)
		require.NoError(t, err)
		assert.Equal(t, Quality(n), q)
		assert.True(t, q.Valid())
	}

	for _, n := range []int{-1, 6, 42} {
		_, err := ParseQuality(n)
		assert.ErrorIs(t, err, ErrInvalidQuality, "value %d", n)
	}
}
