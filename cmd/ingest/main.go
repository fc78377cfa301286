// Command ingest builds the guideline vector store from the PDF
// source directory. Run it before starting the API server, and again
// whenever the guideline documents change; every run replaces the
// whole index.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/integration/embedder"
	"github.com/matcare/pregnancy-backend/internal/rag"
	"github.com/matcare/pregnancy-backend/internal/vectorstore"
)

func main() {
	check := flag.Bool("check", false, "print vector store stats instead of ingesting")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	ctx := ctxzap.ToContext(context.Background(), logger)

	if *check {
		runCheck(ctx, cfg, logger)
		return
	}

	var emb rag.Embedder
	if cfg.EnableMocks {
		emb = embedder.NewMockConnector(logger)
	} else {
		emb = embedder.NewConnector(cfg.EmbedderConnectorCfg, logger)
	}

	stats, err := rag.NewIngester(cfg.RAGCfg, emb, logger).Ingest(ctx)
	if err != nil {
		logger.Fatal("Ingestion failed", zap.Error(err))
	}
	if stats == nil {
		logger.Warn("No PDF documents found, vector store not created",
			zap.String("source_dir", cfg.RAGCfg.SourceDir),
		)
		return
	}

	logger.Info("Ingestion finished",
		zap.Int("documents", stats.Documents),
		zap.Int("chunks", stats.Chunks),
		zap.String("store_path", stats.StorePath),
	)
}

func runCheck(ctx context.Context, cfg *config.Config, logger *zap.Logger) {
	store, err := vectorstore.Open(cfg.RAGCfg.VectorStorePath)
	if err != nil {
		logger.Fatal("Vector store check failed", zap.Error(err))
	}
	defer store.Close()

	count, err := store.Count(ctx)
	if err != nil {
		logger.Fatal("Vector store count failed", zap.Error(err))
	}

	logger.Info("Vector store is ready",
		zap.String("store_path", cfg.RAGCfg.VectorStorePath),
		zap.Int("chunk_count", count),
	)
}
