// Copyright 2025 Yoyodyne Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package loss

import (
	"github.com/Abhishek-P/yoyodyne/internal/loss"
)

// NLL is the masked negative log-likelihood criterion.
type NLL = loss.NLL

// ErrAllPadding is returned by NLL.Forward when every reference
// position is padding.
var ErrAllPadding = loss.ErrAllPadding

// NewNLL creates a plain NLL criterion that skips positions whose
// reference symbol is padIdx.
//
// Example:
//
//	criterion := loss.NewNLL(1)
//	value, err := criterion.Forward(logProbs, refs)
func NewNLL(padIdx int32) *NLL {
	return loss.NewNLL(padIdx)
}

// NewSmoothedNLL creates an NLL criterion with label smoothing.
// The smoothing coefficient must lie in [0, 1).
//
// Example:
//
//	criterion, err := loss.NewSmoothedNLL(1, 0.1)
func NewSmoothedNLL(padIdx int32, smoothing float64) (*NLL, error) {
	return loss.NewSmoothedNLL(padIdx, smoothing)
}
