// Package embeddings initializes embedding weight matrices for
// sequence models.
//
// Both initializers zero the padding row so that padded positions
// contribute nothing to downstream sums. Feature symbols share the
// source symbol space, so a matrix over the source side is sized with
// Index.SourceVocabSize and covers feature indices without a second
// table.
package embeddings

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Xavier initializes an embedding matrix with values drawn from a
// normal distribution scaled for the embedding dimension:
//
//	N(0, embeddingSize^-0.5)
//
// The row at padIdx is zeroed afterwards. A negative padIdx leaves
// every row random.
//
// Parameters:
//   - numEmbeddings: Number of rows (vocabulary size)
//   - embeddingSize: Dimension of each embedding vector
//   - padIdx: Index of the padding symbol, or -1 for none
//   - rng: Random source; nil falls back to the global source
//
// Returns a numEmbeddings x embeddingSize matrix.
func Xavier(numEmbeddings, embeddingSize int, padIdx int32, rng *rand.Rand) *mat.Dense {
	std := math.Pow(float64(embeddingSize), -0.5)
	return newMatrix(numEmbeddings, embeddingSize, padIdx, std, rng)
}

// Normal initializes an embedding matrix with values drawn from the
// standard normal distribution N(0, 1).
//
// The row at padIdx is zeroed afterwards. A negative padIdx leaves
// every row random.
//
// Parameters:
//   - numEmbeddings: Number of rows (vocabulary size)
//   - embeddingSize: Dimension of each embedding vector
//   - padIdx: Index of the padding symbol, or -1 for none
//   - rng: Random source; nil falls back to the global source
//
// Returns a numEmbeddings x embeddingSize matrix.
func Normal(numEmbeddings, embeddingSize int, padIdx int32, rng *rand.Rand) *mat.Dense {
	return newMatrix(numEmbeddings, embeddingSize, padIdx, 1.0, rng)
}

// newMatrix fills a rows x cols matrix from N(0, std) and zeroes the
// padding row. Dimension validation is left to mat.NewDense, which
// panics on non-positive sizes.
func newMatrix(rows, cols int, padIdx int32, std float64, rng *rand.Rand) *mat.Dense {
	norm := rand.NormFloat64 //nolint:gosec // math/rand is appropriate for weight initialization
	if rng != nil {
		norm = rng.NormFloat64
	}

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = norm() * std
	}
	w := mat.NewDense(rows, cols, data)

	if padIdx >= 0 && int(padIdx) < rows {
		w.SetRow(int(padIdx), make([]float64, cols))
	}
	return w
}
