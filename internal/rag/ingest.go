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

// IngestStats summarizes one ingestion run.
type IngestStats struct {
	Documents int
	Chunks    int
	StorePath string
}

// Ingester runs the offline ingestion pipeline: load PDFs, split into
// overlapping chunks, embed, persist into the vector store.
type Ingester struct {
	cfg      config.RAGConfig
	embedder Embedder
	splitter *Splitter
	logger   *zap.Logger
}

func NewIngester(cfg config.RAGConfig, embedder Embedder, logger *zap.Logger) *Ingester {
	return &Ingester{
		cfg:      cfg,
		embedder: embedder,
		splitter: NewSplitter(cfg.ChunkSize, cfg.ChunkOverlap),
		logger:   logger,
	}
}

// Ingest populates the vector store from the configured source
// directory. A directory with zero PDF documents is not an error: it
// returns (nil, nil) and creates no store, so the caller can prompt
// for documents and retry.
func (ing *Ingester) Ingest(ctx context.Context) (*IngestStats, error) {
	ctxzap.Info(ctx, "starting ingestion pipeline", zap.String("source_dir", ing.cfg.SourceDir))

	docs, err := LoadPDFDocuments(ing.cfg.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("load documents: %w", err)
	}
	if len(docs) == 0 {
		ctxzap.Warn(ctx, "no documents found in source directory, nothing ingested")
		return nil, nil
	}

	sources := make(map[string]struct{})
	for _, doc := range docs {
		sources[doc.Source] = struct{}{}
	}
	ctxzap.Info(ctx, "documents loaded",
		zap.Int("document_count", len(sources)),
		zap.Int("page_count", len(docs)),
	)

	var chunks []entity.DocumentChunk
	for _, doc := range docs {
		for _, text := range ing.splitter.Split(doc.Content) {
			chunks = append(chunks, entity.DocumentChunk{
				Content: text,
				Source:  doc.Source,
				Page:    doc.Page,
			})
		}
	}

	ctxzap.Info(ctx, "documents split into chunks", zap.Int("chunk_count", len(chunks)))

	for i := range chunks {
		embedding, err := ing.embedder.Embed(ctx, chunks[i].Content)
		if err != nil {
			return nil, fmt.Errorf("embed chunk %d: %w", i, err)
		}
		chunks[i].Embedding = embedding
	}

	store, err := vectorstore.Create(ing.cfg.VectorStorePath)
	if err != nil {
		return nil, fmt.Errorf("create vector store: %w", err)
	}
	defer store.Close()

	if err := store.BulkInsert(ctx, chunks); err != nil {
		return nil, fmt.Errorf("persist chunks: %w", err)
	}

	ctxzap.Info(ctx, "ingestion complete",
		zap.Int("chunk_count", len(chunks)),
		zap.String("store_path", ing.cfg.VectorStorePath),
	)

	return &IngestStats{
		Documents: len(sources),
		Chunks:    len(chunks),
		StorePath: ing.cfg.VectorStorePath,
	}, nil
}
