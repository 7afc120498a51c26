// Copyright 2025 Yoyodyne Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package batch provides the flat numeric containers that move between
// the toolkit and a training loop.
//
// # Overview
//
// This package contains:
//   - Sequences: a batch of index sequences, batch x steps
//   - Scores: per-symbol scores for a batch, batch x vocab x steps
//   - Pad: right-padding of ragged rows to a rectangle
//
// Both containers store their elements in a single flat slice in
// row-major order, so a whole batch can be handed to a compute layer
// without copying.
//
// # Basic Usage
//
//	import "github.com/Abhishek-P/yoyodyne/batch"
//
//	func main() {
//	    // Ragged rows, padded to the longest.
//	    seqs, err := batch.Pad([][]int32{
//	        {7, 8, 3},
//	        {9, 3},
//	    }, 1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(seqs.Row(1)) // [9 3 1]
//	}
//
// # Decoding Scores
//
// Scores holds one score per symbol per position. BestIndices reduces
// it to the highest-scoring symbol at each position:
//
//	preds := scores.BestIndices() // *Sequences, batch x steps
package batch
