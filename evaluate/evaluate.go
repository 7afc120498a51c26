// Copyright 2025 Yoyodyne Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package evaluate

import (
	"github.com/Abhishek-P/yoyodyne/internal/batch"
	"github.com/Abhishek-P/yoyodyne/internal/evaluate"
)

// Evaluator computes exact-match accuracy for batches of predictions.
type Evaluator = evaluate.Evaluator

// EvalItem accumulates correct and predicted counts across batches.
type EvalItem = evaluate.EvalItem

// ErrNoPredictions is returned by EvalItem.Accuracy when nothing has
// been evaluated.
var ErrNoPredictions = evaluate.ErrNoPredictions

// NewEvaluator creates an Evaluator.
func NewEvaluator() *Evaluator {
	return evaluate.NewEvaluator()
}

// FinalizePredictions cuts every predicted row after its first end
// marker and fills the remainder with padIdx. The input batch is left
// untouched.
//
// Example:
//
//	preds, _ := batch.FromRows([][]int32{{7, 8, 3, 9, 9}})
//	done := evaluate.FinalizePredictions(preds, 3, 1)
//	// done.Row(0): [7 8 3 1 1]
func FinalizePredictions(preds *batch.Sequences, endIdx, padIdx int32) *batch.Sequences {
	return evaluate.FinalizePredictions(preds, endIdx, padIdx)
}

// Sum folds evaluation items into one.
//
// Example:
//
//	total := evaluate.Sum(items...)
func Sum(items ...EvalItem) EvalItem {
	return evaluate.Sum(items...)
}
