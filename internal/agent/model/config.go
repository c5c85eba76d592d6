package model

// ================ Config ================
type ConversationConfig struct {
	TTL string `envconfig:"CONVERSATION_TTL" default:"30m"`
	// MaxAttempts bounds model queries per turn in the primary loop.
	MaxAttempts int `envconfig:"CONVERSATION_MAX_ATTEMPTS" default:"3"`
	// ExplainAttempts bounds the recommendation explanation sub-loop.
	ExplainAttempts int `envconfig:"CONVERSATION_EXPLAIN_ATTEMPTS" default:"2"`
	// MinHistory is the history length below which an unforced recommend is premature.
	MinHistory int `envconfig:"CONVERSATION_MIN_HISTORY" default:"10"`
}

type InferenceConfig struct {
	Provider    string  `envconfig:"INFERENCE_PROVIDER" default:"gemini"`
	Model       string  `envconfig:"INFERENCE_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"INFERENCE_MAX_TOKENS" default:"1024"`
	Temperature float32 `envconfig:"INFERENCE_TEMPERATURE" default:"0.7"`
	// ThinkingBudget enables Gemini thinking when positive.
	ThinkingBudget int32 `envconfig:"INFERENCE_THINKING_BUDGET" default:"0"`
}

type PromptConfig struct {
	CounselorName string `envconfig:"PROMPT_COUNSELOR_NAME" default:"Genevieve"`
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	DefaultMaxAttempts     = 3
	DefaultExplainAttempts = 2
	DefaultMinHistory      = 10
)

// Normalized returns a copy with non-positive bounds replaced by defaults.
func (c ConversationConfig) Normalized() ConversationConfig {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.ExplainAttempts <= 0 {
		c.ExplainAttempts = DefaultExplainAttempts
	}
	if c.MinHistory <= 0 {
		c.MinHistory = DefaultMinHistory
	}
	return c
}
