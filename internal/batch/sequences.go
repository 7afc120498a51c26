// Package batch provides the flat containers that move symbol data
// through training and evaluation: Sequences for batches of symbol
// indices and Scores for batches of per-symbol model outputs.
//
// Both containers store their elements in a single contiguous slice in
// row-major order. Accessors do not bounds-check beyond what the slice
// itself enforces.
package batch

import (
	"fmt"
	"slices"
)

// Sequences is a batch of equal-length symbol-index rows, stored as a
// flat slice in row-major order: element (b, t) lives at b*steps+t.
type Sequences struct {
	data  []int32
	batch int
	steps int
}

// NewSequences allocates a zeroed batch of the given dimensions.
func NewSequences(batch, steps int) (*Sequences, error) {
	if batch <= 0 || steps <= 0 {
		return nil, fmt.Errorf("invalid sequence dimensions %dx%d (must be > 0)", batch, steps)
	}
	return &Sequences{
		data:  make([]int32, batch*steps),
		batch: batch,
		steps: steps,
	}, nil
}

// FromRows copies a rectangular slice of rows into a new batch.
func FromRows(rows [][]int32) (*Sequences, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty batch")
	}
	steps := len(rows[0])
	for b, row := range rows {
		if len(row) != steps {
			return nil, fmt.Errorf("ragged batch: row %d has %d steps, row 0 has %d", b, len(row), steps)
		}
	}

	s, err := NewSequences(len(rows), steps)
	if err != nil {
		return nil, err
	}
	for b, row := range rows {
		copy(s.Row(b), row)
	}
	return s, nil
}

// Pad copies variable-length rows into a new batch, right-padding every
// row with padIdx up to the length of the longest row.
func Pad(rows [][]int32, padIdx int32) (*Sequences, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty batch")
	}
	steps := 0
	for _, row := range rows {
		if len(row) > steps {
			steps = len(row)
		}
	}

	s, err := NewSequences(len(rows), steps)
	if err != nil {
		return nil, err
	}
	for b, row := range rows {
		dst := s.Row(b)
		n := copy(dst, row)
		for t := n; t < steps; t++ {
			dst[t] = padIdx
		}
	}
	return s, nil
}

// Batch returns the number of rows.
func (s *Sequences) Batch() int {
	return s.batch
}

// Steps returns the number of positions per row.
func (s *Sequences) Steps() int {
	return s.steps
}

// At returns the symbol index at row b, position t.
func (s *Sequences) At(b, t int) int32 {
	return s.data[b*s.steps+t]
}

// Set stores a symbol index at row b, position t.
func (s *Sequences) Set(b, t int, id int32) {
	s.data[b*s.steps+t] = id
}

// Row returns row b as a view over the underlying storage. Writes to
// the returned slice are visible in the batch.
func (s *Sequences) Row(b int) []int32 {
	return s.data[b*s.steps : (b+1)*s.steps]
}

// Data returns the underlying flat storage.
func (s *Sequences) Data() []int32 {
	return s.data
}

// Clone returns a deep copy of the batch.
func (s *Sequences) Clone() *Sequences {
	clone := &Sequences{
		data:  make([]int32, len(s.data)),
		batch: s.batch,
		steps: s.steps,
	}
	copy(clone.data, s.data)
	return clone
}

// Equal reports whether two batches have the same dimensions and
// contents.
func (s *Sequences) Equal(other *Sequences) bool {
	if s.batch != other.batch || s.steps != other.steps {
		return false
	}
	return slices.Equal(s.data, other.data)
}

// Rows copies the batch out into a slice of per-row slices.
func (s *Sequences) Rows() [][]int32 {
	rows := make([][]int32, s.batch)
	for b := 0; b < s.batch; b++ {
		rows[b] = slices.Clone(s.Row(b))
	}
	return rows
}

// String renders the batch dimensions and rows for debugging.
func (s *Sequences) String() string {
	return fmt.Sprintf("Sequences(%dx%d)%v", s.batch, s.steps, s.Rows())
}
