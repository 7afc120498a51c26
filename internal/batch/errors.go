package batch

import "fmt"

// MismatchError reports prediction and reference batches whose batch
// dimensions disagree.
type MismatchError struct {
	Preds int // prediction batch size
	Refs  int // reference batch size
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("prediction batch size (%d) and reference batch size (%d) do not match", e.Preds, e.Refs)
}
