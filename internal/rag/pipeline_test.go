package rag

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/vectorstore"
)

type stubEmbedder struct {
	vector []float64
	err    error
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	return s.vector, s.err
}

type stubGenerator struct {
	answer     string
	err        error
	lastPrompt string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.answer, s.err
}

type stubSearcher struct {
	results []entity.SearchResult
	err     error
}

func (s *stubSearcher) SearchSimilar(ctx context.Context, query []float64, k int) ([]entity.SearchResult, error) {
	return s.results, s.err
}

func TestNewPipeline_MissingStore(t *testing.T) {
	cfg := config.RAGConfig{
		VectorStorePath: filepath.Join(t.TempDir(), "does-not-exist.db"),
		RetrieverK:      3,
	}

	_, err := NewPipeline(cfg, &stubEmbedder{}, &stubGenerator{})
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrVectorStoreMissing)
}

func TestPipeline_CloseReleasesOwnedStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.db")

	store, err := vectorstore.Create(path)
	require.NoError(t, err)
	require.NoError(t, store.BulkInsert(context.Background(), []entity.DocumentChunk{
		{Content: "Measure blood pressure at every visit.", Source: "who_anc.pdf", Page: 1, Embedding: []float64{1, 0}},
	}))
	require.NoError(t, store.Close())

	p, err := NewPipeline(config.RAGConfig{VectorStorePath: path, RetrieverK: 3}, &stubEmbedder{}, &stubGenerator{})
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPipeline_CloseWithoutOwnedStoreIsNoop(t *testing.T) {
	p := NewPipelineWithSearcher(&stubSearcher{}, &stubEmbedder{}, &stubGenerator{}, 1)
	require.NoError(t, p.Close())
}

func TestAsk_Success(t *testing.T) {
	searcher := &stubSearcher{
		results: []entity.SearchResult{
			{Content: "Measure blood pressure at every visit.", Source: "who_anc.pdf", Page: 12, Similarity: 0.92},
			{Content: "Check for proteinuria when BP is elevated.", Source: "who_anc.pdf", Page: 13, Similarity: 0.88},
		},
	}
	gen := &stubGenerator{answer: "Blood pressure should be measured at every antenatal visit."}

	p := NewPipelineWithSearcher(searcher, &stubEmbedder{vector: []float64{1, 0}}, gen, 3)

	answer, err := p.Ask(context.Background(), "How often should blood pressure be checked?")
	require.NoError(t, err)

	assert.Equal(t, gen.answer, answer.Answer)
	require.Len(t, answer.Sources, 2)
	assert.Equal(t, "who_anc.pdf", answer.Sources[0].Source)
	assert.Equal(t, 12, answer.Sources[0].Page)

	// The prompt embeds both retrieved chunks and the question.
	assert.Contains(t, gen.lastPrompt, "Measure blood pressure at every visit.")
	assert.Contains(t, gen.lastPrompt, "How often should blood pressure be checked?")
	assert.Contains(t, gen.lastPrompt, "based ONLY on the following context")
}

func TestAsk_CitationTruncation(t *testing.T) {
	long := strings.Repeat("a", 500)
	searcher := &stubSearcher{
		results: []entity.SearchResult{{Content: long, Source: "guide.pdf", Page: 1}},
	}

	p := NewPipelineWithSearcher(searcher, &stubEmbedder{vector: []float64{1}}, &stubGenerator{answer: "ok"}, 1)

	answer, err := p.Ask(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, answer.Sources, 1)
	assert.Len(t, answer.Sources[0].Content, 200)
}

func TestAsk_CitationTruncationMultiByte(t *testing.T) {
	// 250 two-byte runes; a byte-offset cut at 200 would land inside
	// a rune and corrupt the excerpt.
	long := strings.Repeat("µ", 250)
	searcher := &stubSearcher{
		results: []entity.SearchResult{{Content: long, Source: "guide.pdf", Page: 1}},
	}

	p := NewPipelineWithSearcher(searcher, &stubEmbedder{vector: []float64{1}}, &stubGenerator{answer: "ok"}, 1)

	answer, err := p.Ask(context.Background(), "q")
	require.NoError(t, err)
	require.Len(t, answer.Sources, 1)

	excerpt := answer.Sources[0].Content
	assert.True(t, utf8.ValidString(excerpt))
	assert.Equal(t, 200, utf8.RuneCountInString(excerpt))
}

func TestAsk_EmbedFailureWrapped(t *testing.T) {
	p := NewPipelineWithSearcher(&stubSearcher{}, &stubEmbedder{err: errors.New("connection refused")}, &stubGenerator{}, 3)

	_, err := p.Ask(context.Background(), "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrQueryFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAsk_SearchFailureWrapped(t *testing.T) {
	p := NewPipelineWithSearcher(
		&stubSearcher{err: errors.New("disk corrupt")},
		&stubEmbedder{vector: []float64{1}},
		&stubGenerator{},
		3,
	)

	_, err := p.Ask(context.Background(), "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrQueryFailed)
}

func TestAsk_GenerateFailureWrapped(t *testing.T) {
	p := NewPipelineWithSearcher(
		&stubSearcher{results: []entity.SearchResult{{Content: "c", Source: "s.pdf"}}},
		&stubEmbedder{vector: []float64{1}},
		&stubGenerator{err: errors.New("model timeout")},
		3,
	)

	_, err := p.Ask(context.Background(), "q")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrQueryFailed)
	assert.Contains(t, err.Error(), "model timeout")
}

func TestBuildPrompt_FillsTemplate(t *testing.T) {
	prompt := buildPrompt([]string{"chunk one", "chunk two"}, "What about iron?")

	assert.Contains(t, prompt, "chunk one\n\nchunk two")
	assert.Contains(t, prompt, "What about iron?")
	assert.NotContains(t, prompt, "{context}")
	assert.NotContains(t, prompt, "{question}")
}
