package rag

import (
	"context"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

// Embedder turns text into a fixed-dimension vector. Embeddings are
// deterministic for identical text and model version. The same
// embedder must be used at ingestion and at query time; the system
// does not detect a model mismatch.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// Generator produces one completion for one prompt. No multi-turn
// memory, no retries at this layer.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChunkSearcher is the query-side surface of the vector store.
type ChunkSearcher interface {
	SearchSimilar(ctx context.Context, query []float64, k int) ([]entity.SearchResult, error)
}
