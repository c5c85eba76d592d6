package inference

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/schema"
	openai "github.com/sashabaranov/go-openai"

	"github.com/career-counselor/server/internal/agent/model"
)

type fakeCompleter struct {
	req  openai.ChatCompletionRequest
	resp openai.ChatCompletionResponse
	err  error
}

func (f *fakeCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func testConfig() ChatModelConfig {
	return ChatModelConfig{Inference: model.InferenceConfig{
		Provider:    model.ProviderOpenAI,
		Model:       "llama3",
		MaxTokens:   256,
		Temperature: 0.2,
	}}
}

func TestOpenAIGenerate(t *testing.T) {
	fc := &fakeCompleter{resp: openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "What is your level?"},
			FinishReason: openai.FinishReasonStop,
		}},
		Usage: openai.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	}}
	cm := NewOpenAIChatModelWithClient(fc, testConfig())

	out, err := cm.Generate(context.Background(), []*schema.Message{
		schema.SystemMessage("directive"),
		schema.UserMessage("I want to learn"),
		schema.AssistantMessage("Great!", nil),
		nil,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.Content != "What is your level?" || out.Role != schema.Assistant {
		t.Errorf("unexpected message: %+v", out)
	}
	if out.ResponseMeta == nil || out.ResponseMeta.Usage.TotalTokens != 15 {
		t.Errorf("usage not propagated: %+v", out.ResponseMeta)
	}

	if fc.req.Model != "llama3" || fc.req.MaxTokens != 256 {
		t.Errorf("request config: model=%q max_tokens=%d", fc.req.Model, fc.req.MaxTokens)
	}
	wantRoles := []string{openai.ChatMessageRoleSystem, openai.ChatMessageRoleUser, openai.ChatMessageRoleAssistant}
	if len(fc.req.Messages) != len(wantRoles) {
		t.Fatalf("messages: got %d, want %d", len(fc.req.Messages), len(wantRoles))
	}
	for i, r := range wantRoles {
		if fc.req.Messages[i].Role != r {
			t.Errorf("message %d role: got %q, want %q", i, fc.req.Messages[i].Role, r)
		}
	}
}

func TestOpenAIGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		fc   *fakeCompleter
	}{
		{"transport error", &fakeCompleter{err: errors.New("connection refused")}},
		{"empty choices", &fakeCompleter{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := NewOpenAIChatModelWithClient(tt.fc, testConfig())
			if _, err := cm.Generate(context.Background(), []*schema.Message{schema.UserMessage("hi")}); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewChatModelProviders(t *testing.T) {
	ctx := context.Background()

	cfg := testConfig()
	cfg.Inference.Provider = "bogus"
	if _, err := NewChatModel(ctx, cfg); err == nil {
		t.Error("unknown provider should fail")
	}

	cfg = testConfig()
	if _, err := NewChatModel(ctx, cfg); err == nil {
		t.Error("openai without key or base url should fail")
	}

	cfg.OpenAIBaseURL = "http://localhost:11434/v1"
	cm, err := NewChatModel(ctx, cfg)
	if err != nil || cm == nil {
		t.Fatalf("openai with base url: %v", err)
	}

	cfg = testConfig()
	cfg.Inference.Provider = model.ProviderGemini
	if _, err := NewChatModel(ctx, cfg); err == nil {
		t.Error("gemini without key should fail")
	}
}
