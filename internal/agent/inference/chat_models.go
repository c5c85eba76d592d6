package inference

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/career-counselor/server/internal/agent/model"
	logx "github.com/career-counselor/server/pkg/logger"
)

// ChatModel is the part of the eino chat model contract the counselor uses.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error)
}

// ChatModelConfig holds the configuration for chat model creation.
type ChatModelConfig struct {
	Inference model.InferenceConfig

	GeminiAPIKey  string
	GeminiBaseURL string

	OpenAIAPIKey  string
	OpenAIBaseURL string
}

// NewChatModel builds the chat model for the configured provider.
func NewChatModel(ctx context.Context, cfg ChatModelConfig) (ChatModel, error) {
	provider := strings.ToLower(strings.TrimSpace(cfg.Inference.Provider))
	switch provider {
	case "", model.ProviderGemini:
		cm, err := NewGeminiChatModel(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return cm, nil
	case model.ProviderOpenAI:
		cm, err := NewOpenAIChatModel(cfg)
		if err != nil {
			return nil, err
		}
		return cm, nil
	default:
		logx.Error().Str("provider", cfg.Inference.Provider).Msg("Unknown inference provider")
		return nil, fmt.Errorf("unknown inference provider %q", cfg.Inference.Provider)
	}
}
