package batch

import "fmt"

// Scores is a batch of per-symbol model outputs with one score for
// every (row, symbol, position) triple, stored as a flat slice in
// row-major order: element (b, v, t) lives at (b*vocab+v)*steps+t.
//
// The middle axis ranges over the target vocabulary, so a row holds one
// score column per sequence position.
type Scores struct {
	data  []float32
	batch int
	vocab int
	steps int
}

// NewScores allocates a zeroed score batch of the given dimensions.
func NewScores(batch, vocab, steps int) (*Scores, error) {
	if batch <= 0 || vocab <= 0 || steps <= 0 {
		return nil, fmt.Errorf("invalid score dimensions %dx%dx%d (must be > 0)", batch, vocab, steps)
	}
	return &Scores{
		data:  make([]float32, batch*vocab*steps),
		batch: batch,
		vocab: vocab,
		steps: steps,
	}, nil
}

// Batch returns the number of rows.
func (s *Scores) Batch() int {
	return s.batch
}

// Vocab returns the size of the symbol axis.
func (s *Scores) Vocab() int {
	return s.vocab
}

// Steps returns the number of positions per row.
func (s *Scores) Steps() int {
	return s.steps
}

// At returns the score for symbol v at row b, position t.
func (s *Scores) At(b, v, t int) float32 {
	return s.data[(b*s.vocab+v)*s.steps+t]
}

// Set stores the score for symbol v at row b, position t.
func (s *Scores) Set(b, v, t int, score float32) {
	s.data[(b*s.vocab+v)*s.steps+t] = score
}

// Data returns the underlying flat storage.
func (s *Scores) Data() []float32 {
	return s.data
}

// BestIndices reduces the symbol axis, returning for every (row,
// position) the index of the highest-scoring symbol. Ties go to the
// lowest index.
func (s *Scores) BestIndices() *Sequences {
	out := &Sequences{
		data:  make([]int32, s.batch*s.steps),
		batch: s.batch,
		steps: s.steps,
	}
	for b := 0; b < s.batch; b++ {
		base := b * s.vocab * s.steps
		for t := 0; t < s.steps; t++ {
			best := int32(0)
			bestScore := s.data[base+t]
			for v := 1; v < s.vocab; v++ {
				if score := s.data[base+v*s.steps+t]; score > bestScore {
					bestScore = score
					best = int32(v)
				}
			}
			out.data[b*s.steps+t] = best
		}
	}
	return out
}
