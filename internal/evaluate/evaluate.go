// Package evaluate scores decoded predictions against gold references
// by whole-sequence exact match.
//
// Evaluation is strict: a prediction counts as correct only when every
// position agrees with the reference, padding included. Predictions
// are finalized first so that garbage emitted after the end marker
// cannot sink an otherwise correct row.
package evaluate

import (
	"slices"

	"github.com/Abhishek-P/yoyodyne/internal/batch"
)

// FinalizePredictions normalizes a batch of decoded rows so that
// nothing after the first end marker influences comparison: the prefix
// up to and including the first end marker is kept verbatim and every
// later position is overwritten with padIdx.
//
// The input is never modified. Rows without an end marker are kept
// whole, as is every row of a single-row batch. An end marker at the
// first step keeps a one-step prefix; a row is never emptied. Applying
// the operation twice gives the same result as applying it once.
func FinalizePredictions(preds *batch.Sequences, endIdx, padIdx int32) *batch.Sequences {
	out := preds.Clone()
	if out.Batch() == 1 {
		return out
	}
	steps := out.Steps()
	for b := 0; b < out.Batch(); b++ {
		row := out.Row(b)
		end := slices.Index(row, endIdx)
		if end < 0 || end == steps-1 {
			continue
		}
		for t := end + 1; t < steps; t++ {
			row[t] = padIdx
		}
	}
	return out
}

// Evaluator computes exact-match accuracy over batches of model scores
// and pad-terminated gold references.
type Evaluator struct{}

// NewEvaluator returns an exact-match evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate reduces scores over the symbol axis to best indices, then
// counts rows that match their reference exactly.
func (ev *Evaluator) Evaluate(scores *batch.Scores, refs *batch.Sequences, endIdx, padIdx int32) (EvalItem, error) {
	if scores.Batch() != refs.Batch() {
		return EvalItem{}, &batch.MismatchError{Preds: scores.Batch(), Refs: refs.Batch()}
	}
	return ev.EvaluateDecoded(scores.BestIndices(), refs, endIdx, padIdx)
}

// EvaluateDecoded counts exact matches for rows that are already
// symbol indices. Predictions are finalized, then truncated or
// right-padded with padIdx to the reference length; references are
// compared as-is.
func (ev *Evaluator) EvaluateDecoded(preds, refs *batch.Sequences, endIdx, padIdx int32) (EvalItem, error) {
	if preds.Batch() != refs.Batch() {
		return EvalItem{}, &batch.MismatchError{Preds: preds.Batch(), Refs: refs.Batch()}
	}

	final := FinalizePredictions(preds, endIdx, padIdx)
	final, err := fitSteps(final, refs.Steps(), padIdx)
	if err != nil {
		return EvalItem{}, err
	}

	item := EvalItem{NumPredicted: refs.Batch()}
	for b := 0; b < refs.Batch(); b++ {
		if slices.Equal(final.Row(b), refs.Row(b)) {
			item.NumCorrect++
		}
	}
	return item, nil
}

// fitSteps resizes preds to the given step count: longer rows lose
// their tail, shorter rows are right-padded with padIdx.
func fitSteps(preds *batch.Sequences, steps int, padIdx int32) (*batch.Sequences, error) {
	if preds.Steps() == steps {
		return preds, nil
	}
	out, err := batch.NewSequences(preds.Batch(), steps)
	if err != nil {
		return nil, err
	}
	for b := 0; b < preds.Batch(); b++ {
		dst := out.Row(b)
		n := copy(dst, preds.Row(b))
		for t := n; t < steps; t++ {
			dst[t] = padIdx
		}
	}
	return out, nil
}
