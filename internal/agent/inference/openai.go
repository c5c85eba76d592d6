package inference

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudwego/eino/callbacks"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	openai "github.com/sashabaranov/go-openai"
)

const openAIType = "OpenAI"

// ollamaPlaceholderKey is sent when no key is configured; local
// OpenAI-compatible servers ignore it.
const ollamaPlaceholderKey = "ollama"

// ChatCompleter is the slice of the go-openai client the adapter calls.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIChatModel adapts any OpenAI-compatible chat completion endpoint,
// Ollama's /v1 included, to the eino chat model contract.
type OpenAIChatModel struct {
	client      ChatCompleter
	model       string
	maxTokens   int
	temperature float32
}

// NewOpenAIChatModel creates the adapter. OPENAI_BASE_URL selects the endpoint.
func NewOpenAIChatModel(cfg ChatModelConfig) (*OpenAIChatModel, error) {
	key := cfg.OpenAIAPIKey
	if key == "" {
		if cfg.OpenAIBaseURL == "" {
			return nil, fmt.Errorf("openai: OPENAI_API_KEY is required without OPENAI_BASE_URL")
		}
		key = ollamaPlaceholderKey
	}

	clientCfg := openai.DefaultConfig(key)
	if cfg.OpenAIBaseURL != "" {
		clientCfg.BaseURL = cfg.OpenAIBaseURL
	}

	return NewOpenAIChatModelWithClient(openai.NewClientWithConfig(clientCfg), cfg), nil
}

// NewOpenAIChatModelWithClient wires an existing client, mainly for tests.
func NewOpenAIChatModelWithClient(client ChatCompleter, cfg ChatModelConfig) *OpenAIChatModel {
	modelName := cfg.Inference.Model
	if modelName == "" {
		modelName = openai.GPT4oMini
	}
	return &OpenAIChatModel{
		client:      client,
		model:       modelName,
		maxTokens:   cfg.Inference.MaxTokens,
		temperature: cfg.Inference.Temperature,
	}
}

func (m *OpenAIChatModel) GetType() string { return openAIType }

// IsCallbacksEnabled tells eino this component fires its own callbacks.
func (m *OpenAIChatModel) IsCallbacksEnabled() bool { return true }

// Generate sends the history as one chat completion request.
func (m *OpenAIChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (out *schema.Message, err error) {
	options := einomodel.GetCommonOptions(&einomodel.Options{
		Model:       &m.model,
		MaxTokens:   &m.maxTokens,
		Temperature: &m.temperature,
	}, opts...)

	req := openai.ChatCompletionRequest{
		Model:    derefString(options.Model),
		Messages: toOpenAIMessages(input),
	}
	if options.MaxTokens != nil && *options.MaxTokens > 0 {
		req.MaxTokens = *options.MaxTokens
	}
	if options.Temperature != nil {
		req.Temperature = *options.Temperature
	}
	if len(options.Stop) > 0 {
		req.Stop = options.Stop
	}

	ctx = callbacks.OnStart(ctx, &einomodel.CallbackInput{
		Messages: input,
		Config: &einomodel.Config{
			Model:       req.Model,
			MaxTokens:   req.MaxTokens,
			Temperature: req.Temperature,
		},
	})
	defer func() {
		if err != nil {
			callbacks.OnError(ctx, err)
		}
	}()

	resp, err := m.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai chat completion: empty choices")
	}

	choice := resp.Choices[0]
	usage := &schema.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
	out = schema.AssistantMessage(choice.Message.Content, nil)
	out.ResponseMeta = &schema.ResponseMeta{
		FinishReason: string(choice.FinishReason),
		Usage:        usage,
	}

	callbacks.OnEnd(ctx, &einomodel.CallbackOutput{
		Message: out,
		TokenUsage: &einomodel.TokenUsage{
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
			TotalTokens:      usage.TotalTokens,
		},
	})
	return out, nil
}

func toOpenAIMessages(in []*schema.Message) []openai.ChatCompletionMessage {
	msgs := make([]openai.ChatCompletionMessage, 0, len(in))
	for _, m := range in {
		if m == nil {
			continue
		}
		role := openai.ChatMessageRoleUser
		switch m.Role {
		case schema.System:
			role = openai.ChatMessageRoleSystem
		case schema.Assistant:
			role = openai.ChatMessageRoleAssistant
		}
		msgs = append(msgs, openai.ChatCompletionMessage{
			Role:    role,
			Content: m.Content,
		})
	}
	return msgs
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
