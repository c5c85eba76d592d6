package dialogue

import (
	"context"
	"errors"

	"github.com/cloudwego/eino/callbacks"
	"github.com/cloudwego/eino/components"
	"github.com/cloudwego/eino/schema"

	"github.com/career-counselor/server/internal/agent/dialogue/guards"
	"github.com/career-counselor/server/internal/agent/dialogue/observers"
	"github.com/career-counselor/server/internal/agent/dialogue/prompts"
	"github.com/career-counselor/server/internal/agent/inference"
	"github.com/career-counselor/server/internal/agent/model"
	errx "github.com/career-counselor/server/internal/core/error"
	logx "github.com/career-counselor/server/pkg/logger"
)

// Recommender ranks catalog courses for a completed profile.
type Recommender interface {
	Recommend(ctx context.Context, goal, level, skills, careerPath string) ([]model.Course, error)
}

// Config holds everything needed to assemble a Counselor.
type Config struct {
	ChatModel   inference.ChatModel
	Recommender Recommender

	// ModelName labels callbacks and selects pricing for cost logs.
	ModelName string
	// ModelType labels callbacks, e.g. "Gemini" or "OpenAI".
	ModelType string

	Prompt       model.PromptConfig
	Conversation model.ConversationConfig

	// Guards overrides the production guard table when non-nil.
	Guards []guards.Guard
	// Handlers overrides the default observers when non-nil.
	Handlers []callbacks.Handler
}

// Counselor drives one conversational turn at a time against a Session.
// It holds no per-conversation state and is safe for concurrent use across
// distinct sessions.
type Counselor struct {
	chatModel   inference.ChatModel
	recommender Recommender
	composer    *prompts.Composer
	engine      *guards.Engine
	conv        model.ConversationConfig
	handlers    []callbacks.Handler
	modelName   string
	modelType   string
}

// NewCounselor validates cfg and builds a Counselor.
func NewCounselor(cfg Config) (*Counselor, error) {
	if cfg.ChatModel == nil {
		return nil, errors.New("dialogue: chat model is required")
	}
	if cfg.Recommender == nil {
		return nil, errors.New("dialogue: recommender is required")
	}

	conv := cfg.Conversation.Normalized()

	table := cfg.Guards
	if table == nil {
		table = guards.DefaultGuards(conv.MinHistory)
	}
	handlers := cfg.Handlers
	if handlers == nil {
		handlers = []callbacks.Handler{observers.NewAllCallbacks()}
	}

	c := &Counselor{
		chatModel:   cfg.ChatModel,
		recommender: cfg.Recommender,
		composer:    prompts.NewComposer(cfg.Prompt),
		engine:      guards.NewEngine(table),
		conv:        conv,
		handlers:    handlers,
		modelName:   cfg.ModelName,
		modelType:   cfg.ModelType,
	}

	names := make([]string, 0, len(table))
	for _, g := range c.engine.Guards() {
		names = append(names, g.Name)
	}
	logx.Debug().Strs("guards", names).Str("model", c.modelName).Msg("counselor assembled")
	return c, nil
}

// Conversation returns the normalized loop bounds in effect.
func (c *Counselor) Conversation() model.ConversationConfig {
	return c.conv
}

// generate calls the chat model with callbacks attached.
func (c *Counselor) generate(ctx context.Context, history []*schema.Message) (*schema.Message, error) {
	ctx = callbacks.InitCallbacks(ctx, &callbacks.RunInfo{
		Name:      c.modelName,
		Type:      c.modelType,
		Component: components.ComponentOfChatModel,
	}, c.handlers...)

	msg, err := c.chatModel.Generate(ctx, history)
	if err != nil {
		return nil, errx.WrapInference(err)
	}
	if msg == nil {
		return nil, errx.WrapInference(errors.New("chat model returned no message"))
	}
	return msg, nil
}

// compose renders the directive with prompt callbacks attached.
func (c *Counselor) compose(ctx context.Context, slots model.SlotSet) (string, error) {
	ctx = callbacks.InitCallbacks(ctx, &callbacks.RunInfo{
		Name:      "state_directive",
		Component: components.ComponentOfPrompt,
	}, c.handlers...)
	return c.composer.Compose(ctx, slots)
}
