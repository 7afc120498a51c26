// Package dataset provides TSV loading, segmentation, and encoding for
// sequence-to-sequence experiments.
//
// This package wraps the internal dataset implementation and provides
// a clean public API for preparing training data.
//
// A dataset is loaded from a tab-separated file. The configured
// columns are segmented into symbols, the vocabulary is discovered and
// sorted, and rows are encoded against an index.Index.
//
// Supported segmenters:
//   - Chars: NFC-normalized individual characters
//   - Split: separator-delimited symbols (words, feature bundles)
//   - Subwords: tiktoken BPE pieces
//
// Example usage:
//
//	import "github.com/Abhishek-P/yoyodyne/dataset"
//
//	// Load a TSV with the default columns (source 1, target 2).
//	ds, err := dataset.Load("train.tsv", dataset.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encode the dev set against the training vocabulary.
//	dev, err := dataset.LoadWithIndex("dev.tsv", conf, ds.Index())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Collate pairs into padded batches.
//	b, err := ds.Collate(ds.Pairs()[:128])
package dataset

import (
	"github.com/Abhishek-P/yoyodyne/internal/dataset"
	"github.com/Abhishek-P/yoyodyne/internal/index"
)

// Dataset holds segmented pairs and the index they are encoded
// against.
type Dataset = dataset.Dataset

// Pair is one segmented data row.
type Pair = dataset.Pair

// Batch is a collated group of encoded pairs.
type Batch = dataset.Batch

// Config selects columns and segmentation for a TSV file.
type Config = dataset.Config

// Segmenter splits a raw cell into symbols.
type Segmenter = dataset.Segmenter

// DefaultConfig returns the conventional layout: source in column 1,
// target in column 2, no features, character segmentation.
func DefaultConfig() Config {
	return dataset.DefaultConfig()
}

// Load reads a TSV file, discovers its vocabulary, and encodes it
// against a fresh index.
func Load(path string, conf Config) (*Dataset, error) {
	return dataset.Load(path, conf)
}

// LoadWithIndex reads a TSV file and encodes it against an existing
// index. Symbols outside the index map to the unknown marker.
func LoadWithIndex(path string, conf Config, ix *index.Index) (*Dataset, error) {
	return dataset.LoadWithIndex(path, conf, ix)
}

// Chars returns a segmenter that yields NFC-normalized characters.
func Chars() Segmenter {
	return dataset.Chars()
}

// Split returns a segmenter that splits on sep and drops empty
// symbols.
func Split(sep string) Segmenter {
	return dataset.Split(sep)
}

// Subwords returns a segmenter that yields tiktoken BPE pieces for the
// named encoding, for example "cl100k_base".
func Subwords(encodingName string) (Segmenter, error) {
	return dataset.Subwords(encodingName)
}
