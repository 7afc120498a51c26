// Package loss implements the negative log-likelihood training
// objective over batches of log-probabilities, with optional label
// smoothing.
package loss

import (
	"errors"
	"fmt"

	"github.com/Abhishek-P/yoyodyne/internal/batch"
	"github.com/Abhishek-P/yoyodyne/internal/index"
)

// ErrAllPadding is returned when every reference position in a batch
// is padding, leaving nothing to average over.
var ErrAllPadding = errors.New("loss undefined: every reference position is padding")

// NLL scores references against model log-probabilities, ignoring
// padded positions.
//
// With label smoothing enabled the result blends the negative
// log-likelihood of the reference symbols with the mean negative
// log-probability over the whole vocabulary:
//
//	(1-alpha)*nll + alpha*smooth
//
// Inputs must already be log-probabilities; nothing here normalizes
// them.
type NLL struct {
	padIdx    int32
	smoothing float64
	smoothed  bool
}

// NewNLL returns a plain negative log-likelihood objective that skips
// positions whose reference is padIdx.
func NewNLL(padIdx int32) *NLL {
	return &NLL{padIdx: padIdx}
}

// NewSmoothedNLL returns a label-smoothed objective. The smoothing
// coefficient must lie in [0, 1); zero reproduces the plain objective
// exactly.
func NewSmoothedNLL(padIdx int32, smoothing float64) (*NLL, error) {
	if smoothing < 0 || smoothing >= 1 {
		return nil, fmt.Errorf("smoothing coefficient %v outside [0, 1)", smoothing)
	}
	return &NLL{padIdx: padIdx, smoothing: smoothing, smoothed: true}, nil
}

// Forward computes the scalar loss for one batch. References equal to
// the padding index are excluded from every average; the positions
// that remain are pooled across the whole batch, not averaged per
// row. Accumulation runs in float64.
func (l *NLL) Forward(logProbs *batch.Scores, refs *batch.Sequences) (float64, error) {
	if logProbs.Batch() != refs.Batch() {
		return 0, &batch.MismatchError{Preds: logProbs.Batch(), Refs: refs.Batch()}
	}
	if logProbs.Steps() != refs.Steps() {
		return 0, fmt.Errorf("prediction steps (%d) and reference steps (%d) do not match",
			logProbs.Steps(), refs.Steps())
	}

	vocab := logProbs.Vocab()
	steps := logProbs.Steps()
	data := logProbs.Data()

	var (
		nllSum    float64
		smoothSum float64
		count     int
	)
	for b := 0; b < logProbs.Batch(); b++ {
		base := b * vocab * steps
		for t := 0; t < steps; t++ {
			ref := refs.At(b, t)
			if ref == l.padIdx {
				continue
			}
			if ref < 0 || int(ref) >= vocab {
				return 0, &index.OutOfRangeError{Index: ref, Size: vocab}
			}
			count++
			nllSum += float64(data[base+int(ref)*steps+t])

			if l.smoothed {
				var rowSum float64
				for v := 0; v < vocab; v++ {
					rowSum += float64(data[base+v*steps+t])
				}
				smoothSum += rowSum
			}
		}
	}
	if count == 0 {
		return 0, ErrAllPadding
	}

	nll := -nllSum / float64(count)
	if !l.smoothed {
		return nll, nil
	}
	smooth := -smoothSum / (float64(count) * float64(vocab))
	return (1-l.smoothing)*nll + l.smoothing*smooth, nil
}
