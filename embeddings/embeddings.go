// Package embeddings provides embedding-matrix initialization for
// sequence models.
//
// This package wraps the internal initializers and exports them for
// training loops that own their model weights.
//
// Example usage:
//
//	import "github.com/Abhishek-P/yoyodyne/embeddings"
//
//	rng := rand.New(rand.NewSource(seed))
//	w := embeddings.Xavier(ix.SourceVocabSize(), 128, ix.PadIdx(), rng)
package embeddings

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/Abhishek-P/yoyodyne/internal/embeddings"
)

// Xavier initializes a numEmbeddings x embeddingSize matrix from
// N(0, embeddingSize^-0.5) and zeroes the row at padIdx.
func Xavier(numEmbeddings, embeddingSize int, padIdx int32, rng *rand.Rand) *mat.Dense {
	return embeddings.Xavier(numEmbeddings, embeddingSize, padIdx, rng)
}

// Normal initializes a numEmbeddings x embeddingSize matrix from
// N(0, 1) and zeroes the row at padIdx.
func Normal(numEmbeddings, embeddingSize int, padIdx int32, rng *rand.Rand) *mat.Dense {
	return embeddings.Normal(numEmbeddings, embeddingSize, padIdx, rng)
}
