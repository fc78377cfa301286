// Command rag-eval runs a batch of questions through the retrieval
// pipeline and writes per-question latency, answer length and cited
// sources to a JSON file. Useful for comparing chunking or model
// settings offline.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/integration/embedder"
	"github.com/matcare/pregnancy-backend/internal/integration/llm"
	"github.com/matcare/pregnancy-backend/internal/rag"
)

type testCase struct {
	Question string `json:"question"`
}

type evalResult struct {
	Question     string                  `json:"question"`
	Answer       string                  `json:"answer"`
	AnswerLength int                     `json:"answer_length"`
	Sources      []entity.SourceCitation `json:"sources"`
	LatencyMs    int64                   `json:"latency_ms"`
	Error        string                  `json:"error,omitempty"`
}

func main() {
	testsetPath := flag.String("testset", "eval/questions.json", "path to the JSON question set")
	outputPath := flag.String("output", "eval/results.json", "path for the results file")

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

	cases, err := loadTestset(*testsetPath)
	if err != nil {
		logger.Fatal("Failed to load test set", zap.Error(err))
	}

	var emb rag.Embedder
	var gen rag.Generator
	if cfg.EnableMocks {
		emb = embedder.NewMockConnector(logger)
		gen = llm.NewMockConnector(logger)
	} else {
		emb = embedder.NewConnector(cfg.EmbedderConnectorCfg, logger)
		gen = llm.NewConnector(cfg.LLMConnectorCfg, logger)
	}

	pipeline, err := rag.NewPipeline(cfg.RAGCfg, emb, gen)
	if err != nil {
		logger.Fatal("Failed to initialize pipeline", zap.Error(err))
	}

	results := make([]evalResult, 0, len(cases))
	for _, tc := range cases {
		start := time.Now()
		answer, err := pipeline.Ask(ctx, tc.Question)
		latency := time.Since(start).Milliseconds()

		res := evalResult{
			Question:  tc.Question,
			LatencyMs: latency,
		}
		if err != nil {
			res.Error = err.Error()
			logger.Warn("Question failed", zap.String("question", tc.Question), zap.Error(err))
		} else {
			res.Answer = answer.Answer
			res.AnswerLength = len(answer.Answer)
			res.Sources = answer.Sources
		}
		results = append(results, res)

		logger.Info("Question evaluated",
			zap.String("question", tc.Question),
			zap.Int64("latency_ms", latency),
		)
	}

	if err := writeResults(*outputPath, results); err != nil {
		logger.Fatal("Failed to write results", zap.Error(err))
	}

	logger.Info("Evaluation finished",
		zap.Int("question_count", len(results)),
		zap.String("output", *outputPath),
	)
}

func loadTestset(path string) ([]testCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cases []testCase
	if err := json.Unmarshal(data, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func writeResults(path string, results []evalResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
