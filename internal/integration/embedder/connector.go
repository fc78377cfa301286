package embedder

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/matcare/pregnancy-backend/internal/config"
	"github.com/matcare/pregnancy-backend/internal/entity"
	"github.com/matcare/pregnancy-backend/internal/integration/common"
	pkghttp "github.com/matcare/pregnancy-backend/pkg/http"
)

const embeddingsEndpoint = "/api/embeddings"

type Connector struct {
	config    config.EmbedderConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.EmbedderConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Embed requests a vector for the given text from the embedding model.
func (c *Connector) Embed(ctx context.Context, text string) ([]float64, error) {
	req := entity.OllamaEmbeddingRequest{
		Model:  c.config.Model,
		Prompt: text,
	}

	var resp entity.OllamaEmbeddingResponse
	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, embeddingsEndpoint, req, &resp)
	}, c.config.Retry.ToRetryOptions()...)
	if err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}

	if len(resp.Embedding) == 0 {
		return nil, fmt.Errorf("invalid embedding response: empty vector")
	}

	ctxzap.Debug(ctx, "text embedded",
		zap.String("model", c.config.Model),
		zap.Int("dimensions", len(resp.Embedding)),
	)

	return resp.Embedding, nil
}
