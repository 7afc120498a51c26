package batch

import (
	"testing"
)

func TestNewScores(t *testing.T) {
	s, err := NewScores(2, 5, 3)
	if err != nil {
		t.Fatalf("NewScores failed: %v", err)
	}
	if s.Batch() != 2 || s.Vocab() != 5 || s.Steps() != 3 {
		t.Errorf("dimensions = %dx%dx%d, want 2x5x3", s.Batch(), s.Vocab(), s.Steps())
	}
	if len(s.Data()) != 30 {
		t.Errorf("Data length = %d, want 30", len(s.Data()))
	}
}

func TestNewScoresInvalidDimensions(t *testing.T) {
	cases := [][3]int{{0, 5, 3}, {2, 0, 3}, {2, 5, 0}, {-1, 5, 3}}
	for _, c := range cases {
		if _, err := NewScores(c[0], c[1], c[2]); err == nil {
			t.Errorf("NewScores(%d, %d, %d) should fail", c[0], c[1], c[2])
		}
	}
}

func TestScoresLayout(t *testing.T) {
	s, _ := NewScores(2, 3, 4)
	s.Set(1, 2, 3, 42)

	if s.At(1, 2, 3) != 42 {
		t.Errorf("At(1, 2, 3) = %v, want 42", s.At(1, 2, 3))
	}
	// (b*vocab+v)*steps+t = (1*3+2)*4+3 = 23
	if s.Data()[23] != 42 {
		t.Errorf("Data[23] = %v, want 42", s.Data()[23])
	}
}

func TestScoresBestIndices(t *testing.T) {
	s, _ := NewScores(2, 4, 2)

	// Row 0: position 0 peaks at symbol 2, position 1 at symbol 3.
	s.Set(0, 0, 0, 0.1)
	s.Set(0, 1, 0, 0.2)
	s.Set(0, 2, 0, 0.9)
	s.Set(0, 3, 0, 0.3)
	s.Set(0, 0, 1, 0.1)
	s.Set(0, 3, 1, 0.8)

	// Row 1: position 0 peaks at symbol 1, position 1 at symbol 0.
	s.Set(1, 1, 0, 0.7)
	s.Set(1, 0, 1, 0.6)

	best := s.BestIndices()
	if best.Batch() != 2 || best.Steps() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", best.Batch(), best.Steps())
	}

	want := [][]int32{
		{2, 3},
		{1, 0},
	}
	for b, row := range want {
		for i, id := range row {
			if best.At(b, i) != id {
				t.Errorf("best(%d, %d) = %d, want %d", b, i, best.At(b, i), id)
			}
		}
	}
}

func TestScoresBestIndicesTieGoesToLowest(t *testing.T) {
	s, _ := NewScores(1, 3, 1)
	s.Set(0, 0, 0, 0.5)
	s.Set(0, 1, 0, 0.5)
	s.Set(0, 2, 0, 0.5)

	best := s.BestIndices()
	if best.At(0, 0) != 0 {
		t.Errorf("tie should go to the lowest index, got %d", best.At(0, 0))
	}
}

func TestScoresBestIndicesNegativeScores(t *testing.T) {
	// Log-probabilities are all negative; the reduction must not assume
	// scores above zero.
	s, _ := NewScores(1, 3, 1)
	s.Set(0, 0, 0, -5.0)
	s.Set(0, 1, 0, -0.5)
	s.Set(0, 2, 0, -2.0)

	best := s.BestIndices()
	if best.At(0, 0) != 1 {
		t.Errorf("best = %d, want 1", best.At(0, 0))
	}
}

func TestMismatchErrorMessage(t *testing.T) {
	err := &MismatchError{Preds: 4, Refs: 8}
	want := "prediction batch size (4) and reference batch size (8) do not match"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
