package presenter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/career-counselor/server/internal/agent/dialogue/parsers"
	"github.com/career-counselor/server/internal/agent/model"
)

const (
	// EmptySpeech is spoken when nothing but a link is left.
	EmptySpeech = "I've found a great course for you! Check the link below."
	// ProcessingSpeech replaces a slipped non-recommend action.
	ProcessingSpeech = "I am processing that information."
)

var (
	urlPattern = regexp.MustCompile(`(?i)https?://[^\s)]+`)

	emojiPattern = regexp.MustCompile("[" +
		"\U0001F600-\U0001F64F" + // emoticons
		"\U0001F300-\U0001F5FF" + // symbols & pictographs
		"\U0001F680-\U0001F6FF" + // transport & map
		"\U0001F1E0-\U0001F1FF" + // flags
		"\U0001F900-\U0001F9FF" +
		"\U0001FA00-\U0001FAFF" +
		"\u2600-\u27BF" + // misc symbols, dingbats
		"\uFE0F\u200D" + // variation selector, joiner
		"]+")
)

// Presentation is a reply split for the two output channels.
type Presentation struct {
	Text      string `json:"reply"`
	Speech    string `json:"speech"`
	CourseURL string `json:"course_url,omitempty"`
}

// Present splits a counselor reply into display text, speakable text and the
// course link. The link is taken from the last line when present there.
func Present(reply string) Presentation {
	text, speech := reply, reply

	if parsers.LooksLikeAction(reply) {
		c := parsers.Classify(reply)
		switch {
		case c.Kind == model.KindAction && c.Action.Name == model.ActionRecommend:
			speech = fmt.Sprintf("I recommend learning %s to become a %s.",
				param(c.Action.Params, "skills", "new skills"),
				param(c.Action.Params, "career_path", "professional"))
		case c.Kind == model.KindAction:
			speech = ProcessingSpeech
		default:
			if speech = strings.TrimSpace(parsers.StripActionPayloads(reply)); speech == "" {
				speech = ProcessingSpeech
			}
		}
		text = speech
		reply = speech
	}

	var courseURL string
	lines := strings.Split(strings.TrimSpace(reply), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if u := urlPattern.FindString(last); u != "" {
		courseURL = u
		speech = strings.TrimSpace(strings.Join(lines[:len(lines)-1], "\n"))
		text = speech
	} else if u := urlPattern.FindString(reply); u != "" {
		courseURL = u
		speech = strings.ReplaceAll(reply, u, "")
		text = speech
	}

	if strings.TrimSpace(speech) == "" {
		speech = EmptySpeech
		text = speech
	}

	return Presentation{
		Text:      strings.TrimSpace(text),
		Speech:    StripEmoji(speech),
		CourseURL: courseURL,
	}
}

// StripEmoji removes pictographs a speech engine would read aloud.
func StripEmoji(s string) string {
	return strings.TrimSpace(emojiPattern.ReplaceAllString(s, ""))
}

func param(params map[string]any, key, fallback string) string {
	if v, ok := params[key].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}
