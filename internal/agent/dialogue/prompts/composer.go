package prompts

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/career-counselor/server/internal/agent/model"
)

//go:embed template/counselor_prompt.txt
var counselorPrompt string

//go:embed template/state_directive.txt
var stateDirective string

// unsetValue mirrors how the model has always seen an empty slot.
const unsetValue = "None"

const defaultCounselorName = "Genevieve"

// StatusComplete is the status line rendered once every slot is known.
const StatusComplete = "STATUS: COMPLETE. Proceeding to recommendation."

type stateLine struct {
	Label string
	Value string
}

// Composer renders the leading system directive from the current slots.
type Composer struct {
	instructions string
	tpl          *prompt.DefaultChatTemplate
}

// NewComposer builds a composer for the configured counselor persona.
func NewComposer(cfg model.PromptConfig) *Composer {
	name := strings.TrimSpace(cfg.CounselorName)
	if name == "" {
		name = defaultCounselorName
	}
	return &Composer{
		instructions: strings.TrimSpace(strings.NewReplacer("{counselor_name}", name).Replace(counselorPrompt)),
		tpl: prompt.FromMessages(
			schema.GoTemplate,
			schema.SystemMessage(stateDirective),
		),
	}
}

// Instructions returns the fixed base instruction text.
func (c *Composer) Instructions() string {
	return c.instructions
}

// Compose returns the full directive for history[0]. The result is a complete
// snapshot and is meant to replace the previous directive, never extend it.
func (c *Composer) Compose(ctx context.Context, slots model.SlotSet) (string, error) {
	lines := make([]stateLine, 0, len(model.SlotOrder))
	for _, slot := range model.SlotOrder {
		v := slots.Get(slot)
		if v == "" {
			v = unsetValue
		}
		lines = append(lines, stateLine{Label: slot.Label(), Value: v})
	}

	msgs, err := c.tpl.Format(ctx, map[string]any{
		"Instructions": c.instructions,
		"Slots":        lines,
		"Complete":     slots.Complete(),
		"Missing":      MissingList(slots.Missing()),
	})
	if err != nil {
		return "", fmt.Errorf("directive render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("directive render: empty result")
	}
	return strings.TrimSpace(msgs[0].Content), nil
}

// MissingList joins slot names with ", " in canonical order.
func MissingList(missing []model.Slot) string {
	names := make([]string, len(missing))
	for i, s := range missing {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
