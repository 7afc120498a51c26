// Package dataset loads transduction examples from TSV files,
// discovers their vocabularies, and turns examples into padded index
// batches.
//
// A dataset couples segmented examples with the Index mapping their
// symbols. Training data builds a fresh Index via Load; held-out data
// attaches the training Index via LoadWithIndex so every split shares
// one id space.
package dataset

import (
	"fmt"
	"os"
	"slices"

	"github.com/Abhishek-P/yoyodyne/internal/batch"
	"github.com/Abhishek-P/yoyodyne/internal/index"
	"github.com/Abhishek-P/yoyodyne/internal/parallel"
)

// Pair is one example: a segmented source, optional feature tags, and
// an optional segmented target.
type Pair struct {
	Source   []string
	Features []string
	Target   []string
}

// Dataset holds segmented examples plus the Index that maps their
// symbols.
type Dataset struct {
	pairs []Pair
	conf  Config
	index *index.Index
}

// Load reads a TSV file, segments every row, and builds a fresh Index
// from the vocabulary it finds. Vocabulary discovery sorts symbols, so
// the same data always produces the same index.
func Load(path string, conf Config) (*Dataset, error) {
	pairs, err := loadPairs(path, conf)
	if err != nil {
		return nil, err
	}

	source, features, target := discoverVocabulary(pairs)
	var ix *index.Index
	if conf.HasFeatures() {
		ix = index.NewWithFeatures(source, features, target)
	} else {
		ix = index.New(source, target)
	}
	return &Dataset{pairs: pairs, conf: conf, index: ix}, nil
}

// LoadWithIndex reads a TSV file and attaches an existing index,
// keeping held-out symbols in the same id space as training symbols.
func LoadWithIndex(path string, conf Config, ix *index.Index) (*Dataset, error) {
	pairs, err := loadPairs(path, conf)
	if err != nil {
		return nil, err
	}
	return &Dataset{pairs: pairs, conf: conf, index: ix}, nil
}

func loadPairs(path string, conf Config) ([]Pair, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	srcSeg, err := conf.sourceSegmenter()
	if err != nil {
		return nil, err
	}
	tgtSeg, err := conf.targetSegmenter()
	if err != nil {
		return nil, err
	}
	featSeg := conf.featuresSegmenter()

	//nolint:gosec // G304: File path comes from user input, which is expected for data loading
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	rows, err := readRows(file)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows in %s", path)
	}

	// Pull the raw column strings out sequentially so errors carry row
	// numbers, then segment in parallel.
	type rawRow struct {
		source, features, target string
	}
	raw := make([]rawRow, len(rows))
	for i, fields := range rows {
		var rr rawRow
		if rr.source, err = column(fields, conf.SourceCol, i+1); err != nil {
			return nil, err
		}
		if conf.HasTarget() {
			if rr.target, err = column(fields, conf.TargetCol, i+1); err != nil {
				return nil, err
			}
		}
		if conf.HasFeatures() {
			if rr.features, err = column(fields, conf.FeaturesCol, i+1); err != nil {
				return nil, err
			}
		}
		raw[i] = rr
	}

	pairs := make([]Pair, len(raw))
	parallel.For(len(raw), func(i int) {
		pairs[i].Source = srcSeg.Segment(raw[i].source)
		if conf.HasFeatures() {
			pairs[i].Features = featSeg.Segment(raw[i].features)
		}
		if conf.HasTarget() {
			pairs[i].Target = tgtSeg.Segment(raw[i].target)
		}
	}, conf.Parallel)

	return pairs, nil
}

// discoverVocabulary collects the distinct symbols of every column,
// sorted for determinism.
func discoverVocabulary(pairs []Pair) (source, features, target []string) {
	srcSet := make(map[string]struct{})
	featSet := make(map[string]struct{})
	tgtSet := make(map[string]struct{})
	for _, p := range pairs {
		for _, s := range p.Source {
			srcSet[s] = struct{}{}
		}
		for _, s := range p.Features {
			featSet[s] = struct{}{}
		}
		for _, s := range p.Target {
			tgtSet[s] = struct{}{}
		}
	}
	return sortedKeys(srcSet), sortedKeys(featSet), sortedKeys(tgtSet)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Len returns the number of examples.
func (d *Dataset) Len() int {
	return len(d.pairs)
}

// Pair returns example i.
func (d *Dataset) Pair(i int) Pair {
	return d.pairs[i]
}

// Pairs returns the examples in file order.
func (d *Dataset) Pairs() []Pair {
	return d.pairs
}

// Index returns the vocabulary index attached to the dataset.
func (d *Dataset) Index() *index.Index {
	return d.index
}

// EncodeSource maps source symbols to indices, wrapped with the start
// and end markers. Unknown symbols map to the unknown marker.
func (d *Dataset) EncodeSource(symbols []string) []int32 {
	ix := d.index
	out := make([]int32, 0, len(symbols)+2)
	out = append(out, ix.StartIdx())
	for _, s := range symbols {
		out = append(out, ix.SourceMap().Index(s, ix.UnkIdx()))
	}
	out = append(out, ix.EndIdx())
	return out
}

// EncodeFeatures maps feature symbols to indices. Features carry no
// boundary markers.
func (d *Dataset) EncodeFeatures(symbols []string) []int32 {
	ix := d.index
	out := make([]int32, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, ix.SourceMap().Index(s, ix.UnkIdx()))
	}
	return out
}

// EncodeTarget maps target symbols to indices, terminated with the end
// marker. The decoder supplies its own start marker, so none is added
// here.
func (d *Dataset) EncodeTarget(symbols []string) []int32 {
	ix := d.index
	out := make([]int32, 0, len(symbols)+1)
	for _, s := range symbols {
		out = append(out, ix.TargetMap().Index(s, ix.UnkIdx()))
	}
	out = append(out, ix.EndIdx())
	return out
}

// DecodeSource maps a batch of source indices back to symbols,
// dropping every reserved index.
func (d *Dataset) DecodeSource(seqs *batch.Sequences) ([][]string, error) {
	return d.decode(seqs, d.index.SourceMap())
}

// DecodeTarget maps a batch of target indices back to symbols,
// dropping every reserved index.
func (d *Dataset) DecodeTarget(seqs *batch.Sequences) ([][]string, error) {
	return d.decode(seqs, d.index.TargetMap())
}

func (d *Dataset) decode(seqs *batch.Sequences, m *index.SymbolMap) ([][]string, error) {
	out := make([][]string, seqs.Batch())
	for b := 0; b < seqs.Batch(); b++ {
		row := seqs.Row(b)
		symbols := make([]string, 0, len(row))
		for _, id := range row {
			if d.index.IsSpecial(id) {
				continue
			}
			symbol, err := m.Symbol(id)
			if err != nil {
				return nil, err
			}
			symbols = append(symbols, symbol)
		}
		out[b] = symbols
	}
	return out, nil
}

// Batch bundles the padded index tensors for a slice of examples.
type Batch struct {
	Sources  *batch.Sequences
	Features *batch.Sequences // nil without a features column
	Targets  *batch.Sequences // nil without a target column
}

// Collate encodes and right-pads a slice of examples into index
// batches. Targets come out pad-terminated: every position after the
// end marker holds the padding index.
func (d *Dataset) Collate(pairs []Pair) (*Batch, error) {
	if len(pairs) == 0 {
		return nil, fmt.Errorf("empty batch")
	}
	padIdx := d.index.PadIdx()

	srcRows := make([][]int32, len(pairs))
	for i, p := range pairs {
		srcRows[i] = d.EncodeSource(p.Source)
	}
	sources, err := batch.Pad(srcRows, padIdx)
	if err != nil {
		return nil, fmt.Errorf("failed to collate sources: %w", err)
	}
	out := &Batch{Sources: sources}

	if d.conf.HasFeatures() {
		featRows := make([][]int32, len(pairs))
		for i, p := range pairs {
			featRows[i] = d.EncodeFeatures(p.Features)
		}
		out.Features, err = batch.Pad(featRows, padIdx)
		if err != nil {
			return nil, fmt.Errorf("failed to collate features: %w", err)
		}
	}

	if d.conf.HasTarget() {
		tgtRows := make([][]int32, len(pairs))
		for i, p := range pairs {
			tgtRows[i] = d.EncodeTarget(p.Target)
		}
		out.Targets, err = batch.Pad(tgtRows, padIdx)
		if err != nil {
			return nil, fmt.Errorf("failed to collate targets: %w", err)
		}
	}
	return out, nil
}
