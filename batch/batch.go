// Copyright 2025 Yoyodyne Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package batch

import (
	"github.com/Abhishek-P/yoyodyne/internal/batch"
)

// Sequences is a rectangular batch of index sequences.
type Sequences = batch.Sequences

// Scores holds per-symbol scores for every position of a batch.
type Scores = batch.Scores

// MismatchError reports prediction and reference batches of different
// sizes.
type MismatchError = batch.MismatchError

// NewSequences creates a zero-filled batch x steps container.
//
// Example:
//
//	seqs, err := batch.NewSequences(2, 5)
func NewSequences(batchSize, steps int) (*Sequences, error) {
	return batch.NewSequences(batchSize, steps)
}

// FromRows builds a Sequences from rows of equal length.
//
// Example:
//
//	seqs, err := batch.FromRows([][]int32{
//	    {7, 8, 3},
//	    {9, 3, 1},
//	})
func FromRows(rows [][]int32) (*Sequences, error) {
	return batch.FromRows(rows)
}

// Pad right-pads ragged rows with padIdx and builds a Sequences sized
// to the longest row.
//
// Example:
//
//	seqs, err := batch.Pad([][]int32{{7, 8, 3}, {9, 3}}, 1)
//	// rows: [7 8 3], [9 3 1]
func Pad(rows [][]int32, padIdx int32) (*Sequences, error) {
	return batch.Pad(rows, padIdx)
}

// NewScores creates a zero-filled batch x vocab x steps container.
//
// Example:
//
//	scores, err := batch.NewScores(2, 10, 5)
func NewScores(batchSize, vocab, steps int) (*Scores, error) {
	return batch.NewScores(batchSize, vocab, steps)
}
