package observers

import (
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

func TestUsageOf(t *testing.T) {
	msg := schema.AssistantMessage("hi", nil)
	msg.ResponseMeta = &schema.ResponseMeta{Usage: &schema.TokenUsage{PromptTokens: 3, CompletionTokens: 4, TotalTokens: 7}}

	tests := []struct {
		name   string
		output *einomodel.CallbackOutput
		want   int
	}{
		{"nil output", nil, 0},
		{"callback usage wins", &einomodel.CallbackOutput{Message: msg, TokenUsage: &einomodel.TokenUsage{TotalTokens: 9}}, 9},
		{"message meta fallback", &einomodel.CallbackOutput{Message: msg}, 7},
		{"no usage", &einomodel.CallbackOutput{Message: schema.AssistantMessage("x", nil)}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := 0
			if u := usageOf(tt.output); u != nil {
				got = u.TotalTokens
			}
			if got != tt.want {
				t.Errorf("total tokens: got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLastUserContent(t *testing.T) {
	msgs := []*schema.Message{
		schema.SystemMessage("sys"),
		schema.UserMessage(" first "),
		nil,
		schema.UserMessage(" second "),
		schema.AssistantMessage("reply", nil),
	}
	if got := lastUserContent(msgs); got != "second" {
		t.Errorf("got %q", got)
	}
	if got := lastUserContent(nil); got != "" {
		t.Errorf("empty history: got %q", got)
	}
}

func TestNewAllCallbacks(t *testing.T) {
	if NewAllCallbacks() == nil {
		t.Fatal("handler must not be nil")
	}
}
