package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidQuality is returned when a quality score is outside the 0-5 range.
var ErrInvalidQuality = errors.New("quality must be between 0 and 5")

// Quality is the ordinal 0-5 score indicating how easily a card was
// remembered during a review.
type Quality int

const (
	IncorrectAndForgotten    Quality = 0
	IncorrectButRemembered   Quality = 1
	IncorrectButEasyToRecall Quality = 2
	CorrectWithDifficulty    Quality = 3
	CorrectWithHesitation    Quality = 4
	Perfect                  Quality = 5
)

// ParseQuality converts a numeric grade into a Quality.
// Returns ErrInvalidQuality for values outside 0-5.
func ParseQuality(n int) (Quality, error) {
	q := Quality(n)
	if !q.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidQuality, n)
	}
	return q, nil
}

// Valid reports whether the quality is within the defined 0-5 range.
func (q Quality) Valid() bool {
	return q >= IncorrectAndForgotten && q <= Perfect
}

// Failed reports whether the review counts as a failure. Qualities 0-2 fail;
// 3-5 succeed.
func (q Quality) Failed() bool {
	return q <= IncorrectButEasyToRecall
}

// String returns a human-readable name for the quality score.
func (q Quality) String() string {
	switch q {
	case IncorrectAndForgotten:
		return "IncorrectAndForgotten"
	case IncorrectButRemembered:
		return "IncorrectButRemembered"
	case IncorrectButEasyToRecall:
		return "IncorrectButEasyToRecall"
	case CorrectWithDifficulty:
		return "CorrectWithDifficulty"
	case CorrectWithHesitation:
		return "CorrectWithHesitation"
	case Perfect:
		return "Perfect"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}
