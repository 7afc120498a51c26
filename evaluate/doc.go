// Copyright 2025 Yoyodyne Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package evaluate provides exact-match accuracy over batches of
// predicted sequences.
//
// # Overview
//
// This package contains:
//   - FinalizePredictions: truncation of raw predictions at the first
//     end marker
//   - Evaluator: exact-match comparison of finalized predictions
//     against references
//   - EvalItem: a running correct/predicted statistic that sums across
//     batches
//
// # Basic Usage
//
//	import "github.com/Abhishek-P/yoyodyne/evaluate"
//
//	func main() {
//	    ev := evaluate.NewEvaluator()
//
//	    var total evaluate.EvalItem
//	    for _, b := range batches {
//	        item, err := ev.Evaluate(b.Scores, b.Refs, endIdx, padIdx)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	        total = total.Add(item)
//	    }
//
//	    acc, err := total.Accuracy()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("accuracy: %.4f\n", acc)
//	}
//
// # Finalization
//
// A raw predicted row keeps decoding past the end marker. Finalization
// cuts each row after its first end marker and fills the tail with
// padding, so [7 8 3 9 9] with end marker 3 becomes [7 8 3 1 1]:
//
//	done := evaluate.FinalizePredictions(preds, endIdx, padIdx)
package evaluate
