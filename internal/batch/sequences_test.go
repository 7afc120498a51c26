package batch

import (
	"testing"
)

func TestNewSequences(t *testing.T) {
	s, err := NewSequences(3, 4)
	if err != nil {
		t.Fatalf("NewSequences failed: %v", err)
	}
	if s.Batch() != 3 || s.Steps() != 4 {
		t.Errorf("dimensions = %dx%d, want 3x4", s.Batch(), s.Steps())
	}
	for b := 0; b < 3; b++ {
		for i := 0; i < 4; i++ {
			if s.At(b, i) != 0 {
				t.Errorf("At(%d, %d) = %d, want 0", b, i, s.At(b, i))
			}
		}
	}
}

func TestNewSequencesInvalidDimensions(t *testing.T) {
	cases := [][2]int{{0, 4}, {3, 0}, {-1, 4}, {3, -2}}
	for _, c := range cases {
		if _, err := NewSequences(c[0], c[1]); err == nil {
			t.Errorf("NewSequences(%d, %d) should fail", c[0], c[1])
		}
	}
}

func TestSequencesFromRows(t *testing.T) {
	s, err := FromRows([][]int32{
		{2, 5, 3},
		{2, 8, 3},
	})
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	if s.Batch() != 2 || s.Steps() != 3 {
		t.Fatalf("dimensions = %dx%d, want 2x3", s.Batch(), s.Steps())
	}
	if s.At(0, 1) != 5 {
		t.Errorf("At(0, 1) = %d, want 5", s.At(0, 1))
	}
	if s.At(1, 1) != 8 {
		t.Errorf("At(1, 1) = %d, want 8", s.At(1, 1))
	}
}

func TestSequencesFromRowsRagged(t *testing.T) {
	_, err := FromRows([][]int32{{1, 2, 3}, {1, 2}})
	if err == nil {
		t.Fatal("FromRows should reject ragged rows")
	}
}

func TestSequencesFromRowsEmpty(t *testing.T) {
	if _, err := FromRows(nil); err == nil {
		t.Fatal("FromRows should reject an empty batch")
	}
}

func TestSequencesPad(t *testing.T) {
	s, err := Pad([][]int32{
		{2, 5, 3},
		{2, 3},
		{2, 5, 8, 3},
	}, 1)
	if err != nil {
		t.Fatalf("Pad failed: %v", err)
	}
	if s.Batch() != 3 || s.Steps() != 4 {
		t.Fatalf("dimensions = %dx%d, want 3x4", s.Batch(), s.Steps())
	}

	want := [][]int32{
		{2, 5, 3, 1},
		{2, 3, 1, 1},
		{2, 5, 8, 3},
	}
	for b, row := range want {
		for i, id := range row {
			if s.At(b, i) != id {
				t.Errorf("At(%d, %d) = %d, want %d", b, i, s.At(b, i), id)
			}
		}
	}
}

func TestSequencesRowSharesStorage(t *testing.T) {
	s, _ := NewSequences(2, 3)
	s.Row(1)[2] = 42
	if s.At(1, 2) != 42 {
		t.Error("Row should return a zero-copy view")
	}
}

func TestSequencesCloneIndependent(t *testing.T) {
	s, _ := FromRows([][]int32{{1, 2}, {3, 4}})
	clone := s.Clone()

	if !s.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	clone.Set(0, 0, 99)
	if s.At(0, 0) == 99 {
		t.Error("writes to a clone should not reach the original")
	}
	if s.Equal(clone) {
		t.Error("batches with different contents should not be equal")
	}
}

func TestSequencesEqual(t *testing.T) {
	a, _ := FromRows([][]int32{{1, 2, 3}})
	b, _ := FromRows([][]int32{{1, 2, 3}})
	c, _ := FromRows([][]int32{{1, 2}, {3, 4}})

	if !a.Equal(b) {
		t.Error("identical batches should be equal")
	}
	if a.Equal(c) {
		t.Error("batches with different dimensions should not be equal")
	}
}

func TestSequencesRowsCopies(t *testing.T) {
	s, _ := FromRows([][]int32{{1, 2}, {3, 4}})
	rows := s.Rows()
	rows[0][0] = 99
	if s.At(0, 0) == 99 {
		t.Error("Rows should copy the data out")
	}
}
