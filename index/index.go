// Copyright 2025 Yoyodyne Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package index

import (
	"io"

	"github.com/Abhishek-P/yoyodyne/internal/index"
)

// Reserved symbol literals, in vocabulary order.
const (
	UnknownSymbol = index.UnknownSymbol
	PadSymbol     = index.PadSymbol
	StartSymbol   = index.StartSymbol
	EndSymbol     = index.EndSymbol
	MaskSymbol    = index.MaskSymbol
	Task1Symbol   = index.Task1Symbol
	Task2Symbol   = index.Task2Symbol
)

// NumSpecial is the number of reserved symbols at the head of every
// vocabulary.
const NumSpecial = index.NumSpecial

// Special identifies one of the reserved vocabulary symbols.
type Special = index.Special

// Reserved symbol identifiers.
const (
	Unknown Special = index.Unknown
	Pad     Special = index.Pad
	Start   Special = index.Start
	End     Special = index.End
	Mask    Special = index.Mask
	Task1   Special = index.Task1
	Task2   Special = index.Task2
)

// Index composes the source and target vocabularies of one experiment
// and resolves the reserved-symbol indices.
type Index = index.Index

// SymbolMap is a bidirectional symbol-to-index table.
type SymbolMap = index.SymbolMap

// OutOfRangeError reports a symbol lookup with an index outside the
// table.
type OutOfRangeError = index.OutOfRangeError

// Sentinel errors returned when reading a persisted index.
var (
	ErrInvalidMagic       = index.ErrInvalidMagic
	ErrUnsupportedVersion = index.ErrUnsupportedVersion
	ErrChecksumMismatch   = index.ErrChecksumMismatch
	ErrPayloadTooLarge    = index.ErrPayloadTooLarge
)

// New builds an Index over separate source and target user
// vocabularies.
//
// Example:
//
//	ix := index.New([]string{"a", "b", "c"}, []string{"x", "y"})
//	id := ix.SourceMap().Index("a", ix.UnkIdx()) // 7
func New(sourceVocabulary, targetVocabulary []string) *Index {
	return index.New(sourceVocabulary, targetVocabulary)
}

// NewWithFeatures builds an Index whose source symbol space also
// carries a feature vocabulary.
//
// Example:
//
//	ix := index.NewWithFeatures(
//	    []string{"a", "b"},
//	    []string{"case=nom", "num=sg"},
//	    []string{"x"},
//	)
//	offset, _ := ix.FeaturesOffset() // 9
func NewWithFeatures(sourceVocabulary, featuresVocabulary, targetVocabulary []string) *Index {
	return index.NewWithFeatures(sourceVocabulary, featuresVocabulary, targetVocabulary)
}

// NewSymbolMap builds a symbol table over the reserved prefix followed
// by the given user vocabulary.
func NewSymbolMap(vocabulary []string) *SymbolMap {
	return index.NewSymbolMap(vocabulary)
}

// Reserved returns the reserved symbols in vocabulary order.
func Reserved() []string {
	return index.Reserved()
}

// Read loads an index from a .yidx file written by Index.Write.
func Read(path string) (*Index, error) {
	return index.Read(path)
}

// ReadFrom loads an index from r.
func ReadFrom(r io.Reader) (*Index, error) {
	return index.ReadFrom(r)
}
