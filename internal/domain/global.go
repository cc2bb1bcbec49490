package domain

import (
	"math"
	"strconv"
	"time"
)

// sessionGap is how long two revise sessions may be apart before the running
// session statistics are considered stale and reset.
const sessionGap = 7 * 24 * time.Hour

// OptimalFactorMatrix is the learned table of per-(repetitions, ease factor)
// interval multipliers maintained by the SM5 algorithm. The inner map is
// keyed by the ease factor rounded to two decimals, formatted as a string so
// the table serializes as a plain JSON object. The matrix only ever grows.
type OptimalFactorMatrix map[uint64]map[string]float64

// easeKey renders an ease factor as a matrix key, rounded to two decimals.
func easeKey(easeFactor float64) string {
	rounded := math.Round(easeFactor*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// Factor looks up the learned optimal factor for the given repetition count
// and ease factor. Unseen pairs default to 4.0 for the first repetition and
// to the ease factor itself afterwards.
func (m OptimalFactorMatrix) Factor(repetitions uint64, easeFactor float64) float64 {
	if factors, ok := m[repetitions]; ok {
		if of, ok := factors[easeKey(easeFactor)]; ok {
			return of
		}
	}
	if repetitions == 0 {
		return 4.0
	}
	return easeFactor
}

// SetFactor stores a learned optimal factor at (repetitions, ease factor).
func (m *OptimalFactorMatrix) SetFactor(repetitions uint64, easeFactor, optimalFactor float64) {
	if *m == nil {
		*m = OptimalFactorMatrix{}
	}
	factors, ok := (*m)[repetitions]
	if !ok {
		factors = map[string]float64{}
		(*m)[repetitions] = factors
	}
	factors[easeKey(easeFactor)] = optimalFactor
}

// GlobalState holds the cross-card statistics shared by all algorithms.
type GlobalState struct {
	OptimalFactorMatrix OptimalFactorMatrix `json:"optimal_factor_matrix"`
	LastReviseSession   *time.Time          `json:"last_revise_session"`
	MeanQ               *float64            `json:"mean_q"`
	TotalCardsRevised   uint64              `json:"total_cards_revised"`
}

// NewGlobalState returns an empty global state with an initialized matrix.
func NewGlobalState() *GlobalState {
	return &GlobalState{OptimalFactorMatrix: OptimalFactorMatrix{}}
}

// RecordQuality folds one review's quality score into the running mean.
// It is invoked by the review session once per reviewed card, before the
// algorithm runs, regardless of which algorithm is active.
func (g *GlobalState) RecordQuality(q Quality) {
	total := float64(g.TotalCardsRevised)
	g.TotalCardsRevised++
	if g.MeanQ != nil {
		mean := (total**g.MeanQ + float64(q)) / (total + 1)
		g.MeanQ = &mean
		return
	}
	mean := float64(q)
	g.MeanQ = &mean
}

// Refresh prepares the global state for a new revise session. The running
// mean and revised-card counter reset when strictly more than seven days have
// passed since the previous session; the session timestamp is always stamped
// with now afterwards. The factor matrix persists indefinitely.
func (g *GlobalState) Refresh(now time.Time) {
	if g.LastReviseSession != nil && now.Sub(*g.LastReviseSession) > sessionGap {
		g.TotalCardsRevised = 0
		g.MeanQ = nil
	}
	g.LastReviseSession = &now
}
