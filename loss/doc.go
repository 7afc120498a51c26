// Copyright 2025 Yoyodyne Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package loss provides the negative log-likelihood objective for
// sequence training.
//
// # Overview
//
// This package contains:
//   - NLL: masked mean negative log-likelihood over a batch
//   - Label smoothing: optional blend with the mean over the whole
//     score distribution
//
// Positions whose reference symbol is padding are excluded from the
// mean. The mean pools every non-padding position of the batch, so
// short rows are not over-weighted.
//
// # Basic Usage
//
//	import "github.com/Abhishek-P/yoyodyne/loss"
//
//	func main() {
//	    criterion := loss.NewNLL(padIdx)
//
//	    value, err := criterion.Forward(logProbs, refs)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("loss: %.4f\n", value)
//	}
//
// # Label Smoothing
//
// With smoothing coefficient a in [0, 1), the result is
//
//	(1-a) * nll + a * smooth
//
// where smooth is the negated mean log-probability over every symbol
// at the counted positions:
//
//	criterion, err := loss.NewSmoothedNLL(padIdx, 0.1)
package loss
