package examinfo

import (
	"errors"
	"fmt"
)

var (
	ErrAttemptsExceedTotal = errors.New("total attempts cannot exceed the number of questions")
	ErrNegativeAttempts    = errors.New("attempt counts cannot be negative")
)

// Score projects a result from the number of correct and wrong answers
// using the role's marking scheme: correct*correctMark - wrong*negMark.
func (p Pattern) Score(correct, wrong int) (float64, error) {
	if correct < 0 || wrong < 0 {
		return 0, ErrNegativeAttempts
	}
	if correct+wrong > p.TotalQuestions {
		return 0, fmt.Errorf("%w: %d > %d", ErrAttemptsExceedTotal, correct+wrong, p.TotalQuestions)
	}

	return float64(correct)*p.CorrectMark - float64(wrong)*p.NegMark, nil
}
