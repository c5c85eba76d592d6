package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/career-counselor/server/internal/agent/model"
)

//go:embed template/explain_prompt.txt
var explainPrompt string

// Transition is the sentence placed between the justification and the URL.
const Transition = "I found a great course for you!"

// ExplainCorrection is sent when the explanation still looks like an action.
const ExplainCorrection = "SYSTEM: STOP. Do NOT output JSON. Just write a friendly message to the user."

// RenderExplain builds the instruction asking the model to restate the
// recommended courses as prose.
func RenderExplain(courses []model.Course) string {
	b, err := json.Marshal(courses)
	if err != nil {
		b = []byte("[]")
	}
	return strings.TrimSpace(strings.NewReplacer(
		"{courses}", string(b),
		"{transition}", Transition,
	).Replace(explainPrompt))
}

// Greeting is the counselor's opening line.
func Greeting(cfg model.PromptConfig) string {
	name := strings.TrimSpace(cfg.CounselorName)
	if name == "" {
		name = defaultCounselorName
	}
	return fmt.Sprintf("Hello! I am %s, your Career Counselor. What would you like to learn today?", name)
}
