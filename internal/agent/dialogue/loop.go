package dialogue

import (
	"context"
	"time"

	"github.com/career-counselor/server/internal/agent/dialogue/extractors"
	"github.com/career-counselor/server/internal/agent/dialogue/guards"
	"github.com/career-counselor/server/internal/agent/dialogue/parsers"
	"github.com/career-counselor/server/internal/agent/model"
	logx "github.com/career-counselor/server/pkg/logger"
)

// Fixed replies.
const (
	FallbackReply   = guards.FallbackReply
	ApologyReply    = "I'm having trouble thinking right now. Please try again in a moment."
	NoCoursesReply  = "I couldn't find a course that fits your profile yet. What else would you like to learn?"
	ForcedRecommend = `{"action": "recommend", "params": {}}`
)

// Process runs one turn: it records the utterance, refreshes the profile and
// the directive, then queries the model until a response passes every guard
// or the attempt limit is reached. It always returns a reply.
func (c *Counselor) Process(ctx context.Context, s *model.Session, utterance string) string {
	log := logx.Conversation(s.ConversationID)
	defer func() { s.UpdatedAt = time.Now().UTC() }()

	s.AppendUser(utterance)
	if writes := extractors.Apply(&s.Slots, utterance); len(writes) > 0 {
		log.Debug().Interface("writes", writes).Interface("slots", s.Slots).Msg("profile updated")
	}

	forced := s.Slots.Complete()

	directive, err := c.compose(ctx, s.Slots)
	if err != nil {
		log.Error().Err(err).Msg("directive render failed, using base instructions")
		directive = c.composer.Instructions()
	}
	s.ReplaceDirective(directive)

	for attempt := 1; attempt <= c.conv.MaxAttempts; attempt++ {
		var content string
		if forced {
			content = ForcedRecommend
			log.Info().Int("attempt", attempt).Msg("all fields collected, auto-triggering recommendation")
		} else {
			msg, err := c.generate(ctx, s.History)
			if err != nil {
				log.Error().
					Err(err).
					Int("attempt", attempt).
					Str("failure", string(model.FailureInferenceUnavailable)).
					Msg("chat model call failed")
				return ApologyReply
			}
			content = msg.Content
		}

		verdict := c.engine.Evaluate(guards.Input{
			Response:   parsers.Classify(content),
			Slots:      s.Slots,
			HistoryLen: s.Len(),
			Forced:     forced,
		})

		if !verdict.Accepted {
			log.Warn().
				Int("attempt", attempt).
				Str("guard", verdict.Guard).
				Str("failure", string(model.FailurePolicyViolation)).
				Msg("response rejected")
			s.AppendAssistant(content)
			s.AppendSystem(verdict.Correction)
			continue
		}

		if verdict.Response.Kind == model.KindNaturalLanguage {
			s.AppendAssistant(verdict.Response.Text)
			return verdict.Response.Text
		}

		log.Info().Int("attempt", attempt).Str("action", verdict.Response.Action.Name).Msg("action accepted")
		return c.recommend(ctx, s, content)
	}

	log.Warn().
		Int("attempts", c.conv.MaxAttempts).
		Str("failure", string(model.FailureRetriesExhausted)).
		Msg("no acceptable response, using fallback")
	s.AppendAssistant(FallbackReply)
	return FallbackReply
}
