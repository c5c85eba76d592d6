package parsers

import (
	"encoding/json"
	"strings"

	"github.com/career-counselor/server/internal/agent/model"
	logx "github.com/career-counselor/server/pkg/logger"
)

// basic safety limits to avoid pathological inputs
const (
	maxPayloadLen = 16 * 1024 // 16KB
	maxErrSnippet = 120
)

const actionKeyword = "action"

// LooksLikeAction is the cheap sniff test: both braces and the word "action".
func LooksLikeAction(content string) bool {
	return strings.Contains(content, "{") &&
		strings.Contains(content, "}") &&
		strings.Contains(content, actionKeyword)
}

// ActionSpan returns the byte offsets of the candidate payload, from the
// first '{' to the last '}' inclusive.
func ActionSpan(content string) (start, end int, ok bool) {
	start = strings.Index(content, "{")
	end = strings.LastIndex(content, "}")
	if start < 0 || end < start {
		return 0, 0, false
	}
	return start, end + 1, true
}

// Classify tags a completion as natural language or action. It never fails:
// anything that does not decode into a JSON object is natural language.
func Classify(content string) (out model.Classified) {
	out = model.Classified{Kind: model.KindNaturalLanguage, Text: content}

	defer func() {
		if r := recover(); r != nil {
			logx.Error().Str("component", "response_parser").Msgf("panic recovered: %v", r)
			out = model.Classified{Kind: model.KindNaturalLanguage, Text: content}
		}
	}()

	if !LooksLikeAction(content) {
		return out
	}

	start, end, ok := ActionSpan(content)
	if !ok {
		logx.Debug().Str("failure", string(model.FailureMalformedAction)).Msg("inverted braces, treating as prose")
		return out
	}
	payload := content[start:end]
	if len(payload) > maxPayloadLen {
		logx.Warn().Int("payload_len", len(payload)).Msg("action payload too large, treating as prose")
		return out
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		logx.Debug().
			Err(err).
			Str("failure", string(model.FailureMalformedAction)).
			Str("payload", safeSnippet(payload)).
			Msg("action payload did not decode, treating as prose")
		return out
	}

	name, _ := raw["action"].(string)
	params, _ := raw["params"].(map[string]any)
	if params == nil {
		params = map[string]any{}
	}

	return model.Classified{
		Kind: model.KindAction,
		Text: content,
		Action: model.Action{
			Name:   strings.TrimSpace(name),
			Params: params,
		},
	}
}

func safeSnippet(s string) string {
	if len(s) > maxErrSnippet {
		return s[:maxErrSnippet] + "..."
	}
	return s
}

// StripActionPayloads cuts every balanced {...} span that carries a quoted
// "action" key, ignoring braces inside JSON strings. An unterminated span runs
// to the end of the text. Lines left holding only braces are dropped and the
// remaining lines are re-spaced. Text without such a span is returned as-is.
func StripActionPayloads(content string) string {
	var (
		b        strings.Builder
		depth    int
		start    = -1
		inString bool
		escaped  bool
		cut      bool
		last     int
	)

	for i := 0; i < len(content); i++ {
		ch := content[i]
		if depth > 0 && inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			if depth > 0 {
				inString = true
			}
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				if span := content[start : i+1]; strings.Contains(span, `"`+actionKeyword+`"`) {
					b.WriteString(content[last:start])
					last = i + 1
					cut = true
				}
				start = -1
			}
		}
	}
	if depth > 0 && strings.Contains(content[start:], `"`+actionKeyword+`"`) {
		b.WriteString(content[last:start])
		last = len(content)
		cut = true
	}
	if !cut {
		return content
	}
	b.WriteString(content[last:])

	var kept []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if strings.Trim(line, "{} ") == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
