package observers

import (
	"context"
	"strings"

	einocb "github.com/cloudwego/eino/callbacks"
	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	callbackHelper "github.com/cloudwego/eino/utils/callbacks"

	"github.com/career-counselor/server/internal/agent/model"
	logx "github.com/career-counselor/server/pkg/logger"
)

// newModelHandler logs model calls with the latest user turn, the completion,
// token usage and its USD cost. RunInfo.Name carries the model name.
func newModelHandler() *callbackHelper.ModelCallbackHandler {
	return &callbackHelper.ModelCallbackHandler{
		OnStart: func(ctx context.Context, info *einocb.RunInfo, input *einomodel.CallbackInput) context.Context {
			ev := logx.Debug().Str("component", "chat_model").Str("type", info.Type).Str("model", info.Name)
			if input != nil {
				ev = ev.Int("messages", len(input.Messages))
				if um := lastUserContent(input.Messages); um != "" {
					ev = ev.Str("user", um)
				}
			}
			ev.Msg("model start")
			return ctx
		},
		OnEnd: func(ctx context.Context, info *einocb.RunInfo, output *einomodel.CallbackOutput) context.Context {
			ev := logx.Debug().Str("component", "chat_model").Str("type", info.Type).Str("model", info.Name)
			if output != nil && output.Message != nil {
				ev = ev.Str("assistant", strings.TrimSpace(output.Message.Content))
			}
			ev.Msg("model end")

			if usage := usageOf(output); usage != nil {
				cost := model.ComputeCost(usage, model.ResolvePricing(info.Name))
				logx.Debug().
					Str("model", info.Name).
					Int("prompt_tokens", cost.PromptTokens).
					Int("completion_tokens", cost.CompletionTokens).
					Int("total_tokens", cost.TotalTokens).
					Float64("input_cost_usd", cost.InputCost).
					Float64("output_cost_usd", cost.OutputCost).
					Float64("total_cost_usd", cost.Total).
					Msg("LLM usage")
			}
			return ctx
		},
		OnError: func(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
			logx.Error().
				Err(err).
				Str("component", "chat_model").
				Str("model", info.Name).
				Str("failure", string(model.FailureInferenceUnavailable)).
				Msg("model error")
			return ctx
		},
	}
}

// usageOf prefers the usage reported on the callback, then the message meta.
func usageOf(output *einomodel.CallbackOutput) *schema.TokenUsage {
	if output == nil {
		return nil
	}
	if u := output.TokenUsage; u != nil {
		return &schema.TokenUsage{
			PromptTokens:     u.PromptTokens,
			CompletionTokens: u.CompletionTokens,
			TotalTokens:      u.TotalTokens,
		}
	}
	if output.Message != nil && output.Message.ResponseMeta != nil {
		return output.Message.ResponseMeta.Usage
	}
	return nil
}

func lastUserContent(msgs []*schema.Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		m := msgs[i]
		if m == nil {
			continue
		}
		if m.Role == schema.User {
			return strings.TrimSpace(m.Content)
		}
	}
	return ""
}
