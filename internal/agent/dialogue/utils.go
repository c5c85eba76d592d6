package dialogue

import (
	"regexp"
	"strings"

	"github.com/career-counselor/server/internal/agent/dialogue/parsers"
	"github.com/career-counselor/server/internal/agent/dialogue/prompts"
)

var urlPattern = regexp.MustCompile(`(?i)https?://\S+`)

// finalizeRecommendation makes the explanation safe to speak: it cuts any
// action payload, removes every URL from the body, and puts courseURL alone
// on the last line. An empty body becomes the transition sentence.
func finalizeRecommendation(text, courseURL string) string {
	if parsers.LooksLikeAction(text) {
		if start, end, ok := parsers.ActionSpan(text); ok {
			text = text[:start] + text[end:]
		}
	}
	text = urlPattern.ReplaceAllString(text, "")

	body := compactLines(text)
	if body == "" {
		body = prompts.Transition
	}
	if courseURL == "" {
		return body
	}
	return body + "\n" + courseURL
}

// compactLines trims every line and drops the empty ones.
func compactLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
