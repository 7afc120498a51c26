// Copyright 2025 Yoyodyne Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package index provides symbol vocabularies for sequence-to-sequence
// experiments.
//
// # Overview
//
// This package contains:
//   - SymbolMap: bidirectional symbol-to-index table
//   - Index: source and target maps plus resolved reserved indices
//   - Persistence: versioned, checksummed .yidx files
//
// Every vocabulary begins with seven reserved symbols:
//
//	0  <UNK>    out-of-vocabulary replacement
//	1  <P>      padding
//	2  <S>      beginning-of-sequence marker
//	3  <E>      end-of-sequence marker
//	4  <MASK>   hidden-position marker
//	5  <TASK1>  task tag
//	6  <TASK2>  task tag
//
// User symbols follow from index 7. Feature symbols, when present,
// share the source symbol space starting at Index.FeaturesOffset.
//
// # Basic Usage
//
//	import "github.com/Abhishek-P/yoyodyne/index"
//
//	func main() {
//	    ix := index.New(
//	        []string{"a", "b", "c"},
//	        []string{"x", "y"},
//	    )
//
//	    // Reserved symbol indices.
//	    pad := ix.PadIdx() // 1
//	    end := ix.EndIdx() // 3
//
//	    // Symbol lookups.
//	    id := ix.SourceMap().Index("b", ix.UnkIdx()) // 8
//	    sym, _ := ix.SourceMap().Symbol(id)          // "b"
//	}
//
// # Persistence
//
//	if err := ix.Write("models/experiment/index.yidx"); err != nil {
//	    log.Fatal(err)
//	}
//	ix, err := index.Read("models/experiment/index.yidx")
package index
