package evaluate

import (
	"errors"
	"fmt"
)

// ErrNoPredictions is returned by Accuracy when an EvalItem counts no
// predicted sequences.
var ErrNoPredictions = errors.New("accuracy undefined: no predicted sequences")

// EvalItem accumulates exact-match counts across evaluation batches.
// The zero value is an empty accumulator, and Add is commutative and
// associative, so per-batch items can be combined in any order.
type EvalItem struct {
	NumCorrect   int // rows that matched their reference exactly
	NumPredicted int // rows compared
}

// Add combines two accumulators.
func (e EvalItem) Add(other EvalItem) EvalItem {
	return EvalItem{
		NumCorrect:   e.NumCorrect + other.NumCorrect,
		NumPredicted: e.NumPredicted + other.NumPredicted,
	}
}

// Sum folds any number of accumulators into one.
func Sum(items ...EvalItem) EvalItem {
	var total EvalItem
	for _, item := range items {
		total = total.Add(item)
	}
	return total
}

// Accuracy returns the fraction of predicted rows that matched their
// reference. It reports ErrNoPredictions rather than dividing by zero.
func (e EvalItem) Accuracy() (float64, error) {
	if e.NumPredicted == 0 {
		return 0, ErrNoPredictions
	}
	return float64(e.NumCorrect) / float64(e.NumPredicted), nil
}

// String renders the accumulator for logs.
func (e EvalItem) String() string {
	return fmt.Sprintf("%d/%d exact matches", e.NumCorrect, e.NumPredicted)
}
