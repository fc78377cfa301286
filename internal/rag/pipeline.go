package rag

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/vectorstore"
)

const citationMaxLen = 200

// Pipeline answers questions against the ingested guideline chunks.
// Construction fails fast when the vector store has not been built,
// so a misconfigured deployment surfaces at startup instead of on the
// first question.
type Pipeline struct {
	searcher  ChunkSearcher
	embedder  Embedder
	generator Generator
	topK      int

	// store is set only when the pipeline opened the vector store
	// itself; Close releases it on shutdown.
	store *vectorstore.Store
}

// NewPipeline opens the vector store at the configured path and wires
// the embedder and generator. Returns entity.ErrVectorStoreMissing
// (wrapped) when the store file does not exist.
func NewPipeline(cfg config.RAGConfig, embedder Embedder, generator Generator) (*Pipeline, error) {
	store, err := vectorstore.Open(cfg.VectorStorePath)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		searcher:  store,
		embedder:  embedder,
		generator: generator,
		topK:      cfg.RetrieverK,
		store:     store,
	}, nil
}

// Close releases the vector store when the pipeline owns it. Pipelines
// built with NewPipelineWithSearcher leave the store lifecycle to the
// caller and Close is a no-op.
func (p *Pipeline) Close() error {
	if p.store == nil {
		return nil
	}
	return p.store.Close()
}

// NewPipelineWithSearcher wires an already-open searcher. Used by
// tests and by callers that manage the store lifecycle themselves.
func NewPipelineWithSearcher(searcher ChunkSearcher, embedder Embedder, generator Generator, topK int) *Pipeline {
	return &Pipeline{
		searcher:  searcher,
		embedder:  embedder,
		generator: generator,
		topK:      topK,
	}
}

// Ask embeds the question, retrieves the top-k most similar chunks,
// and generates an answer constrained to that context. Every failure
// is wrapped in entity.ErrQueryFailed with the cause preserved.
func (p *Pipeline) Ask(ctx context.Context, question string) (*entity.RAGAnswer, error) {
	queryVector, err := p.embedder.Embed(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("%w: embed question: %w", entity.ErrQueryFailed, err)
	}

	results, err := p.searcher.SearchSimilar(ctx, queryVector, p.topK)
	if err != nil {
		return nil, fmt.Errorf("%w: search chunks: %w", entity.ErrQueryFailed, err)
	}

	ctxzap.Debug(ctx, "retrieved context chunks", zap.Int("chunk_count", len(results)))

	contextChunks := make([]string, 0, len(results))
	sources := make([]entity.SourceCitation, 0, len(results))
	for _, res := range results {
		contextChunks = append(contextChunks, res.Content)
		sources = append(sources, entity.SourceCitation{
			Source:  res.Source,
			Page:    res.Page,
			Content: truncate(res.Content, citationMaxLen),
		})
	}

	answer, err := p.generator.Generate(ctx, buildPrompt(contextChunks, question))
	if err != nil {
		return nil, fmt.Errorf("%w: generate answer: %w", entity.ErrQueryFailed, err)
	}

	return &entity.RAGAnswer{
		Answer:  answer,
		Sources: sources,
	}, nil
}

// truncate limits s to max characters, never splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
