package review

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/carddown/internal/domain"
)

func TestRunGradesAllCards(t *testing.T) {
	t.Parallel()

	var committed []domain.CardEntry
	s := NewSession(batch("a", "b"), newAlgo(t), domain.NewGlobalState(), 0,
		func(entries []domain.CardEntry, _ *domain.GlobalState) error {
			committed = entries
			return nil
		})

	in := strings.NewReader("\n5\n\n4\n")
	var out strings.Builder
	require.NoError(t, Run(s, in, &out, 0))

	require.Len(t, committed, 2)
	assert.Equal(t, uint64(1), committed[0].ReviseCount)
	assert.Equal(t, uint64(1), committed[1].ReviseCount)
	assert.Contains(t, out.String(), "Session complete.")
	assert.Contains(t, out.String(), "answer")
}

func TestRunQuitFlushesPartialResults(t *testing.T) {
	t.Parallel()

	var committed []domain.CardEntry
	s := NewSession(batch("a", "b"), newAlgo(t), domain.NewGlobalState(), 0,
		func(entries []domain.CardEntry, _ *domain.GlobalState) error {
			committed = entries
			return nil
		})

	// Grade the first card, quit at the second prompt.
	in := strings.NewReader("\n3\nq\n")
	var out strings.Builder
	require.NoError(t, Run(s, in, &out, 0))

	require.Len(t, committed, 2, "quitting still commits the whole batch")
	assert.Equal(t, uint64(1), committed[0].ReviseCount)
	assert.Zero(t, committed[1].ReviseCount)
}

func TestRunRepromptsOnInvalidGrade(t *testing.T) {
	t.Parallel()

	s := NewSession(batch("a"), newAlgo(t), domain.NewGlobalState(), 0,
		func([]domain.CardEntry, *domain.GlobalState) error { return nil })

	in := strings.NewReader("\nseven\n9\n5\n")
	var out strings.Builder
	require.NoError(t, Run(s, in, &out, 0))
	assert.Contains(t, out.String(), "enter a number from 0 to 5")
}

func TestRunExhaustedInputFinishes(t *testing.T) {
	t.Parallel()

	calls := 0
	s := NewSession(batch("a"), newAlgo(t), domain.NewGlobalState(), 0,
		func([]domain.CardEntry, *domain.GlobalState) error {
			calls++
			return nil
		})

	require.NoError(t, Run(s, strings.NewReader(""), &strings.Builder{}, 0))
	assert.Equal(t, 1, calls, "EOF still flushes exactly once")
}

func TestRunHonorsMaxDuration(t *testing.T) {
	t.Parallel()

	s := NewSession(batch("a"), newAlgo(t), domain.NewGlobalState(), 0,
		func([]domain.CardEntry, *domain.GlobalState) error { return nil })

	var out strings.Builder
	require.NoError(t, Run(s, strings.NewReader("\n5\n"), &out, time.Nanosecond))
	assert.Contains(t, out.String(), "Session time is up.")
}
