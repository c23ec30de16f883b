package domain

import "time"

// EmbeddingDim is the dimensionality of every face embedding in the
// system. Vectors of any other length are rejected at the boundary.
const EmbeddingDim = 128

type Identity struct {
	ID        string
	Name      string
	Embedding []float64
	Balance   float64
	CreatedAt time.Time
}
