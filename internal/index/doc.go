// Package index maintains the symbol vocabularies for a
// sequence-to-sequence experiment.
//
// An Index pairs a source-side and a target-side SymbolMap. Every map
// begins with the same seven reserved symbols:
//
//	0  <UNK>    unknown symbol
//	1  <P>      padding
//	2  <S>      start of sequence
//	3  <E>      end of sequence
//	4  <MASK>   masked position
//	5  <TASK1>  task tag
//	6  <TASK2>  task tag
//
// User symbols follow the reserved prefix in construction order. When an
// index carries a feature vocabulary, the feature symbols share the
// source symbol space and begin at FeaturesOffset.
//
// Indexes persist in the .yidx binary format:
//
//	Format Structure:
//	  [4 bytes:  Magic "YIDX"]
//	  [4 bytes:  Version (uint32 LE)]
//	  [4 bytes:  Flags (uint32 LE)]
//	  [4 bytes:  Reserved]
//	  [8 bytes:  Payload Size (uint64 LE)]
//	  [8 bytes:  Reserved]
//	  [32 bytes: SHA-256 checksum of the payload]
//	  [Payload:  JSON vocabulary data]
//
// The payload stores the complete symbol lists, so reading a .yidx file
// reconstructs the exact maps without re-running vocabulary discovery.
package index
