package inference

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"google.golang.org/genai"

	logx "github.com/career-counselor/server/pkg/logger"
)

// NewGeminiChatModel creates a Gemini chat model over the genai client.
func NewGeminiChatModel(ctx context.Context, cfg ChatModelConfig) (*gemini.ChatModel, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("gemini: GEMINI_API_KEY is required")
	}

	clientCfg := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.GeminiBaseURL != "" {
		clientCfg.HTTPOptions.BaseURL = cfg.GeminiBaseURL
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini client")
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}

	inf := cfg.Inference
	geminiCfg := &gemini.Config{
		Client:      client,
		Model:       inf.Model,
		Temperature: &inf.Temperature,
		MaxTokens:   &inf.MaxTokens,
	}
	if inf.ThinkingBudget > 0 {
		geminiCfg.ThinkingConfig = &genai.ThinkingConfig{
			IncludeThoughts: false,
			ThinkingBudget:  genai.Ptr(inf.ThinkingBudget),
		}
	}

	chatModel, err := gemini.NewChatModel(ctx, geminiCfg)
	if err != nil {
		logx.Error().Err(err).Msg("Error creating Gemini chat model")
		return nil, fmt.Errorf("error creating Gemini chat model: %w", err)
	}

	logx.Debug().Str("model", inf.Model).Msg("Gemini chat model ready")
	return chatModel, nil
}
