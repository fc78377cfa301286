package llm

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

const generateEndpoint = "/api/generate"

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Generate produces one completion for one prompt.
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating answer via LLM service", zap.String("model", c.config.Model))

	req := entity.OllamaGenerateRequest{
		Model:  c.config.Model,
		Prompt: prompt,
		Stream: false,
		Options: entity.OllamaGenerateOption{
			Temperature: c.config.Temperature,
		},
	}

	var resp entity.OllamaGenerateResponse
	err := retry.Do(func() error {
		return c.connector.DoRequest(ctx, http.MethodPost, generateEndpoint, req, &resp)
	}, c.config.Retry.ToRetryOptions()...)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}

	if resp.Response == "" {
		return "", fmt.Errorf("invalid generate response: empty or missing response field")
	}

	ctxzap.Info(ctx, "answer generated", zap.Int("answer_length", len(resp.Response)))

	return resp.Response, nil
}
