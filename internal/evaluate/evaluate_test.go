package evaluate_test

import (
	"errors"
	"testing"

	"github.com/Abhishek-P/yoyodyne/internal/batch"
	"github.com/Abhishek-P/yoyodyne/internal/evaluate"
)

const (
	padIdx = int32(1)
	endIdx = int32(3)
)

func mustRows(t *testing.T, rows [][]int32) *batch.Sequences {
	t.Helper()
	s, err := batch.FromRows(rows)
	if err != nil {
		t.Fatalf("FromRows failed: %v", err)
	}
	return s
}

// scoresFromRows builds a score batch whose best index at every
// position is the given row value (one-hot scores).
func scoresFromRows(t *testing.T, rows [][]int32, vocab int) *batch.Scores {
	t.Helper()
	s, err := batch.NewScores(len(rows), vocab, len(rows[0]))
	if err != nil {
		t.Fatalf("NewScores failed: %v", err)
	}
	for b, row := range rows {
		for pos, id := range row {
			s.Set(b, int(id), pos, 1.0)
		}
	}
	return s
}

func TestFinalizePredictionsTruncatesAfterFirstEnd(t *testing.T) {
	preds := mustRows(t, [][]int32{
		{2, 5, 3, 4, 4},
		{2, 8, 3, 9, 9},
	})
	got := evaluate.FinalizePredictions(preds, endIdx, padIdx)
	want := mustRows(t, [][]int32{
		{2, 5, 3, 1, 1},
		{2, 8, 3, 1, 1},
	})
	if !got.Equal(want) {
		t.Errorf("finalized = %v, want %v", got, want)
	}
}

func TestFinalizePredictionsKeepsRowsWithoutEnd(t *testing.T) {
	preds := mustRows(t, [][]int32{
		{2, 5, 6, 7, 8},
		{2, 5, 3, 9, 9},
	})
	got := evaluate.FinalizePredictions(preds, endIdx, padIdx)

	want := mustRows(t, [][]int32{
		{2, 5, 6, 7, 8},
		{2, 5, 3, 1, 1},
	})
	if !got.Equal(want) {
		t.Errorf("finalized = %v, want %v", got, want)
	}
}

func TestFinalizePredictionsEndAtLastStep(t *testing.T) {
	preds := mustRows(t, [][]int32{
		{2, 5, 6, 3},
		{2, 5, 3, 3},
	})
	got := evaluate.FinalizePredictions(preds, endIdx, padIdx)

	// Row 0 ends exactly at the last step: nothing to overwrite.
	// Row 1 hits its first end at step 2: step 3 becomes padding.
	want := mustRows(t, [][]int32{
		{2, 5, 6, 3},
		{2, 5, 3, 1},
	})
	if !got.Equal(want) {
		t.Errorf("finalized = %v, want %v", got, want)
	}
}

func TestFinalizePredictionsEndAtFirstStep(t *testing.T) {
	preds := mustRows(t, [][]int32{
		{3, 9, 9, 9},
		{2, 3, 9, 9},
	})
	got := evaluate.FinalizePredictions(preds, endIdx, padIdx)

	// A leading end marker keeps a one-step prefix; the row is never
	// emptied.
	want := mustRows(t, [][]int32{
		{3, 1, 1, 1},
		{2, 3, 1, 1},
	})
	if !got.Equal(want) {
		t.Errorf("finalized = %v, want %v", got, want)
	}
}

func TestFinalizePredictionsSingleRowUntouched(t *testing.T) {
	preds := mustRows(t, [][]int32{{2, 3, 9, 9}})
	got := evaluate.FinalizePredictions(preds, endIdx, padIdx)
	if !got.Equal(preds) {
		t.Errorf("single-row batch should pass through, got %v", got)
	}
}

func TestFinalizePredictionsDoesNotModifyInput(t *testing.T) {
	preds := mustRows(t, [][]int32{
		{2, 3, 9, 9},
		{2, 5, 3, 9},
	})
	snapshot := preds.Clone()

	_ = evaluate.FinalizePredictions(preds, endIdx, padIdx)
	if !preds.Equal(snapshot) {
		t.Error("input batch was modified")
	}
}

func TestFinalizePredictionsIdempotent(t *testing.T) {
	preds := mustRows(t, [][]int32{
		{3, 9, 9, 9},
		{2, 5, 3, 9},
		{2, 5, 6, 7},
	})
	once := evaluate.FinalizePredictions(preds, endIdx, padIdx)
	twice := evaluate.FinalizePredictions(once, endIdx, padIdx)
	if !twice.Equal(once) {
		t.Errorf("second application changed the batch: %v vs %v", twice, once)
	}
}

func TestEvaluateExactMatch(t *testing.T) {
	scores := scoresFromRows(t, [][]int32{{2, 5, 3, 1, 1}}, 10)
	refs := mustRows(t, [][]int32{{2, 5, 3, 1, 1}})

	item, err := evaluate.NewEvaluator().Evaluate(scores, refs, endIdx, padIdx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if item.NumCorrect != 1 || item.NumPredicted != 1 {
		t.Errorf("item = %v, want 1/1", item)
	}
}

func TestEvaluateIgnoresSymbolsAfterEnd(t *testing.T) {
	// The model emits garbage after the end marker; finalization makes
	// the row comparable with the pad-terminated reference.
	preds := mustRows(t, [][]int32{
		{2, 5, 3, 4, 4},
		{2, 8, 3, 6, 2},
	})
	refs := mustRows(t, [][]int32{
		{2, 5, 3, 1, 1},
		{2, 8, 3, 1, 1},
	})

	item, err := evaluate.NewEvaluator().EvaluateDecoded(preds, refs, endIdx, padIdx)
	if err != nil {
		t.Fatalf("EvaluateDecoded failed: %v", err)
	}
	if item.NumCorrect != 2 || item.NumPredicted != 2 {
		t.Errorf("item = %v, want 2/2", item)
	}
}

func TestEvaluateCountsMismatches(t *testing.T) {
	scores := scoresFromRows(t, [][]int32{
		{2, 9, 3, 1, 1},
		{2, 5, 3, 1, 1},
	}, 10)
	refs := mustRows(t, [][]int32{
		{2, 5, 3, 1, 1},
		{2, 5, 3, 1, 1},
	})

	item, err := evaluate.NewEvaluator().Evaluate(scores, refs, endIdx, padIdx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if item.NumCorrect != 1 || item.NumPredicted != 2 {
		t.Errorf("item = %v, want 1/2", item)
	}
}

func TestEvaluateSingleRowMismatch(t *testing.T) {
	scores := scoresFromRows(t, [][]int32{{2, 9, 3, 1, 1}}, 10)
	refs := mustRows(t, [][]int32{{2, 5, 3, 1, 1}})

	item, err := evaluate.NewEvaluator().Evaluate(scores, refs, endIdx, padIdx)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if item.NumCorrect != 0 || item.NumPredicted != 1 {
		t.Errorf("item = %v, want 0/1", item)
	}
}

func TestEvaluateBatchSizeMismatch(t *testing.T) {
	scores := scoresFromRows(t, [][]int32{{2, 3}, {2, 3}, {2, 3}}, 5)
	refs := mustRows(t, [][]int32{{2, 3}})

	_, err := evaluate.NewEvaluator().Evaluate(scores, refs, endIdx, padIdx)
	var mismatch *batch.MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("want MismatchError, got %v", err)
	}
	if mismatch.Preds != 3 || mismatch.Refs != 1 {
		t.Errorf("error sizes = %d/%d, want 3/1", mismatch.Preds, mismatch.Refs)
	}
}

func TestEvaluateTruncatesLongPredictions(t *testing.T) {
	// Decoding ran longer than the reference; the prediction tail is
	// dropped before comparison.
	preds := mustRows(t, [][]int32{
		{2, 5, 3, 1, 1, 1, 1},
		{2, 5, 3, 1, 1, 1, 1},
	})
	refs := mustRows(t, [][]int32{
		{2, 5, 3, 1, 1},
		{2, 5, 3, 1, 1},
	})

	item, err := evaluate.NewEvaluator().EvaluateDecoded(preds, refs, endIdx, padIdx)
	if err != nil {
		t.Fatalf("EvaluateDecoded failed: %v", err)
	}
	if item.NumCorrect != 2 {
		t.Errorf("NumCorrect = %d, want 2", item.NumCorrect)
	}
}

func TestEvaluatePadsShortPredictions(t *testing.T) {
	preds := mustRows(t, [][]int32{
		{2, 5, 3},
		{2, 9, 3},
	})
	refs := mustRows(t, [][]int32{
		{2, 5, 3, 1, 1},
		{2, 5, 3, 1, 1},
	})

	item, err := evaluate.NewEvaluator().EvaluateDecoded(preds, refs, endIdx, padIdx)
	if err != nil {
		t.Fatalf("EvaluateDecoded failed: %v", err)
	}
	if item.NumCorrect != 1 || item.NumPredicted != 2 {
		t.Errorf("item = %v, want 1/2", item)
	}
}

func TestEvaluatePadDistinguishesTrailingSymbols(t *testing.T) {
	// Without an end marker the row is compared whole, so trailing
	// symbols that differ from reference padding count against it.
	preds := mustRows(t, [][]int32{
		{2, 5, 6, 6, 6},
		{2, 5, 6, 1, 1},
	})
	refs := mustRows(t, [][]int32{
		{2, 5, 6, 1, 1},
		{2, 5, 6, 1, 1},
	})

	item, err := evaluate.NewEvaluator().EvaluateDecoded(preds, refs, endIdx, padIdx)
	if err != nil {
		t.Fatalf("EvaluateDecoded failed: %v", err)
	}
	if item.NumCorrect != 1 {
		t.Errorf("NumCorrect = %d, want 1", item.NumCorrect)
	}
}
