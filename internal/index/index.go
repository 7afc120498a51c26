package index

// Index holds the source and target vocabularies for one experiment,
// plus the resolved indices of the reserved symbols.
//
// The reserved indices are resolved once at construction by looking
// each reserved symbol up in the source map. Because the reserved
// prefix always heads the vocabulary, the resolved values are stable
// across experiments: unk=0, pad=1, start=2, end=3, mask=4, task1=5,
// task2=6.
type Index struct {
	source *SymbolMap
	target *SymbolMap

	special [NumSpecial]int32

	featuresOffset int32
	hasFeatures    bool
}

// New builds an Index over separate source and target user
// vocabularies.
func New(sourceVocabulary, targetVocabulary []string) *Index {
	ix := &Index{
		source: NewSymbolMap(sourceVocabulary),
		target: NewSymbolMap(targetVocabulary),
	}
	ix.resolveSpecial()
	return ix
}

// NewWithFeatures builds an Index whose source map also carries a
// feature vocabulary. Feature symbols share the source symbol space
// and begin at FeaturesOffset.
func NewWithFeatures(sourceVocabulary, featuresVocabulary, targetVocabulary []string) *Index {
	combined := make([]string, 0, len(sourceVocabulary)+len(featuresVocabulary))
	combined = append(combined, sourceVocabulary...)
	combined = append(combined, featuresVocabulary...)

	ix := New(combined, targetVocabulary)
	ix.featuresOffset = int32(NumSpecial + len(sourceVocabulary)) //nolint:gosec // G115: vocabulary size < 2^31
	ix.hasFeatures = true
	return ix
}

// resolveSpecial caches the index of each reserved symbol. The values
// come from map lookups, never from literal constants.
func (ix *Index) resolveSpecial() {
	for s := Unknown; s <= Task2; s++ {
		ix.special[s] = ix.source.Index(s.Symbol(), -1)
	}
}

// SourceMap returns the source-side symbol map.
func (ix *Index) SourceMap() *SymbolMap {
	return ix.source
}

// TargetMap returns the target-side symbol map.
func (ix *Index) TargetMap() *SymbolMap {
	return ix.target
}

// SourceVocabSize returns the size of the source symbol space,
// reserved prefix and any feature symbols included.
func (ix *Index) SourceVocabSize() int {
	return ix.source.Len()
}

// TargetVocabSize returns the size of the target symbol space,
// reserved prefix included.
func (ix *Index) TargetVocabSize() int {
	return ix.target.Len()
}

// SpecialIdx returns the resolved index of a reserved symbol.
func (ix *Index) SpecialIdx(s Special) int32 {
	return ix.special[s]
}

// UnkIdx returns the index of the unknown-symbol marker.
func (ix *Index) UnkIdx() int32 { return ix.special[Unknown] }

// PadIdx returns the index of the padding symbol.
func (ix *Index) PadIdx() int32 { return ix.special[Pad] }

// StartIdx returns the index of the beginning-of-sequence marker.
func (ix *Index) StartIdx() int32 { return ix.special[Start] }

// EndIdx returns the index of the end-of-sequence marker.
func (ix *Index) EndIdx() int32 { return ix.special[End] }

// MaskIdx returns the index of the masked-position marker.
func (ix *Index) MaskIdx() int32 { return ix.special[Mask] }

// Task1Idx returns the index of the first task tag.
func (ix *Index) Task1Idx() int32 { return ix.special[Task1] }

// Task2Idx returns the index of the second task tag.
func (ix *Index) Task2Idx() int32 { return ix.special[Task2] }

// IsSpecial reports whether id is one of the reserved indices.
func (ix *Index) IsSpecial(id int32) bool {
	for _, s := range ix.special {
		if id == s {
			return true
		}
	}
	return false
}

// HasFeatures reports whether the index carries a feature vocabulary.
func (ix *Index) HasFeatures() bool {
	return ix.hasFeatures
}

// FeaturesOffset returns the index at which feature symbols begin in
// the source map, and whether the index carries features at all.
func (ix *Index) FeaturesOffset() (int32, bool) {
	return ix.featuresOffset, ix.hasFeatures
}

// FeatureVocabSize returns the number of feature symbols, zero when
// the index carries none.
func (ix *Index) FeatureVocabSize() int {
	if !ix.hasFeatures {
		return 0
	}
	return ix.source.Len() - int(ix.featuresOffset)
}
