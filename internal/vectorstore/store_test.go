package vectorstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcare/pregnancy-backend/internal/entity"
)

func testChunks() []entity.DocumentChunk {
	return []entity.DocumentChunk{
		{Content: "blood pressure guidance", Source: "who.pdf", Page: 1, Embedding: []float64{1, 0, 0}},
		{Content: "glucose screening", Source: "who.pdf", Page: 2, Embedding: []float64{0, 1, 0}},
		{Content: "iron supplementation", Source: "nice.pdf", Page: 5, Embedding: []float64{0, 0, 1}},
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrVectorStoreMissing)
}

func TestCreateInsertSearch(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chunks.db")

	store, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, store.BulkInsert(ctx, testChunks()))
	require.NoError(t, store.Close())

	// Reopen to prove the index survives restarts.
	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	results, err := store.SearchSimilar(ctx, []float64{1, 0.1, 0}, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, "blood pressure guidance", results[0].Content)
	assert.Equal(t, "who.pdf", results[0].Source)
	assert.Equal(t, 1, results[0].Page)
	assert.Greater(t, results[0].Similarity, results[1].Similarity)
}

func TestSearchSimilar_KLargerThanCorpus(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chunks.db")

	store, err := Create(path)
	require.NoError(t, err)
	defer store.Close()
	require.NoError(t, store.BulkInsert(ctx, testChunks()))

	results, err := store.SearchSimilar(ctx, []float64{1, 1, 1}, 10)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestCreate_SupersedesPreviousIndex(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chunks.db")

	store, err := Create(path)
	require.NoError(t, err)
	require.NoError(t, store.BulkInsert(ctx, testChunks()))
	require.NoError(t, store.Close())

	// A second ingestion run starts from an empty index.
	store, err = Create(path)
	require.NoError(t, err)
	defer store.Close()

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestBulkInsert_RejectsEmptyEmbedding(t *testing.T) {
	ctx := context.Background()

	store, err := Create(filepath.Join(t.TempDir(), "chunks.db"))
	require.NoError(t, err)
	defer store.Close()

	err = store.BulkInsert(ctx, []entity.DocumentChunk{{Content: "text", Source: "a.pdf"}})
	require.Error(t, err)
}

func TestVectorBlobRoundTrip(t *testing.T) {
	vector := []float64{0.25, -1.5, 3.75, 0}

	assert.Equal(t, vector, blobToVector(vectorToBlob(vector)))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-9)

	// Mismatched or zero vectors score zero instead of erroring.
	assert.Equal(t, 0.0, cosineSimilarity([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
}
