package dialogue

import (
	"context"

	"github.com/career-counselor/server/internal/agent/dialogue/parsers"
	"github.com/career-counselor/server/internal/agent/dialogue/prompts"
	"github.com/career-counselor/server/internal/agent/model"
	logx "github.com/career-counselor/server/pkg/logger"
)

// recommend turns an authorized recommend action into a spoken explanation.
// The recommender is queried with the collected slots only; the slots are
// cleared as soon as it succeeds.
func (c *Counselor) recommend(ctx context.Context, s *model.Session, actionText string) string {
	log := logx.Conversation(s.ConversationID)
	slots := s.Slots

	courses, err := c.recommender.Recommend(ctx, slots.Goal, slots.Level, slots.Skills, slots.CareerPath)
	if err != nil {
		log.Error().Err(err).Msg("recommender failed, keeping profile")
		return ApologyReply
	}
	s.Slots.Reset()

	if len(courses) == 0 {
		log.Info().Interface("profile", slots).Msg("no matching courses")
		s.AppendAssistant(NoCoursesReply)
		return NoCoursesReply
	}
	log.Info().Str("course_id", courses[0].ID).Int("matches", len(courses)).Msg("courses recommended")

	s.AppendAssistant(actionText)
	s.AppendSystem(prompts.RenderExplain(courses))

	var last string
	for attempt := 1; attempt <= c.conv.ExplainAttempts; attempt++ {
		msg, err := c.generate(ctx, s.History)
		if err != nil {
			log.Error().
				Err(err).
				Int("attempt", attempt).
				Str("failure", string(model.FailureInferenceUnavailable)).
				Msg("explanation call failed")
			break
		}
		last = msg.Content
		if !parsers.LooksLikeAction(last) {
			break
		}
		log.Warn().Int("attempt", attempt).Msg("explanation still looks like an action")
		s.AppendAssistant(last)
		s.AppendSystem(prompts.ExplainCorrection)
	}

	reply := finalizeRecommendation(last, courses[0].URL)
	s.AppendAssistant(reply)
	return reply
}
