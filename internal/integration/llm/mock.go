package llm

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is the generator used when ENABLE_MOCKS is set.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating answer", zap.Int("prompt_length", len(prompt)))

	if !strings.Contains(prompt, "Context:") || strings.Contains(prompt, "Context:\n\n\nQuestion:") {
		return "I cannot find this information in the provided guidelines.", nil
	}

	answer := "According to the provided guidelines, regular antenatal visits are recommended, " +
		"with blood pressure and glucose monitoring at each visit. Please consult your healthcare " +
		"provider for advice specific to your situation."

	ctxzap.Info(ctx, "[MOCK] answer generated", zap.Int("answer_length", len(answer)))
	return answer, nil
}
