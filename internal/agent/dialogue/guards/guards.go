package guards

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/career-counselor/server/internal/agent/dialogue/parsers"
	"github.com/career-counselor/server/internal/agent/model"
)

// Guard names, used in logs and verdicts.
const (
	NameBadPhrase          = "bad_phrase"
	NameLeakage            = "leakage"
	NameDebugLeak          = "debug_leak"
	NamePrefixStrip        = "prefix_strip"
	NamePayloadStrip       = "payload_strip"
	NamePrematurity        = "prematurity"
	NameHallucination      = "hallucination"
	NameUnauthorizedAction = "unauthorized_action"
)

// Corrective system messages.
const (
	CorrectionBadPhrase    = "SYSTEM: You failed the rule. Do NOT describe the question. ASK it directly. Example: 'What are your skills?'"
	CorrectionLeakage      = "SYSTEM: You are outputting internal debug text. STOP. Just ask the question in natural English."
	CorrectionDebugLeak    = "SYSTEM: Do NOT output debug info about state. Just ask the question naturally."
	CorrectionPremature    = "SYSTEM: Too soon. You need to collect more info. Reply to the user with a QUESTION about their Level or Skills. Do NOT output JSON."
	CorrectionUnauthorized = "Do NOT output JSON. Ask the user a question in natural English."
)

// FallbackReply is the fixed question used when nothing speakable is left.
const FallbackReply = "Could you tell me a bit more about what you'd like to learn?"

// DebugMarkers are fragments of the internal state block that must never
// reach the user.
var DebugMarkers = []string{
	"Current State of Information",
	"MISSING items:",
	"collected_info:",
	"- Goal:",
	"- Level:",
	"- Skills:",
	"- Career Path:",
}

const (
	badPhrase       = "ask the user"
	askPrefix       = "ASK:"
	minSalvageRunes = 10
)

// Input is everything a guard may look at. Guards never mutate it.
type Input struct {
	Response   model.Classified
	Slots      model.SlotSet
	HistoryLen int
	Forced     bool
}

// Result is the outcome of a single guard.
type Result struct {
	Reject     bool
	Text       string // text handed to the next guard
	Correction string
}

// Guard pairs a pure predicate with the correction it issues.
type Guard struct {
	Name  string
	Kind  model.ResponseKind
	Check func(in Input) Result
}

func pass(text string) Result {
	return Result{Text: text}
}

func reject(correction string) Result {
	return Result{Reject: true, Correction: correction}
}

// DefaultGuards returns the production table in evaluation order.
func DefaultGuards(minHistory int) []Guard {
	return []Guard{
		BadPhrase(),
		Leakage(),
		DebugLeak(),
		PrefixStrip(),
		PayloadStrip(),
		Prematurity(minHistory),
		Hallucination(),
		UnauthorizedAction(),
	}
}

// BadPhrase rejects prose that describes the question instead of asking it.
func BadPhrase() Guard {
	return Guard{
		Name: NameBadPhrase,
		Kind: model.KindNaturalLanguage,
		Check: func(in Input) Result {
			if strings.Contains(strings.ToLower(in.Response.Text), badPhrase) {
				return reject(CorrectionBadPhrase)
			}
			return pass(in.Response.Text)
		},
	}
}

// Leakage rejects prose that carries action/params scaffolding.
func Leakage() Guard {
	return Guard{
		Name: NameLeakage,
		Kind: model.KindNaturalLanguage,
		Check: func(in Input) Result {
			lower := strings.ToLower(in.Response.Text)
			if strings.Contains(lower, "action:") || strings.Contains(lower, "params:") {
				return reject(CorrectionLeakage)
			}
			return pass(in.Response.Text)
		},
	}
}

// DebugLeak salvages the first line of prose that echoes the state block, or
// rejects when that line is too short to stand on its own.
func DebugLeak() Guard {
	return Guard{
		Name: NameDebugLeak,
		Kind: model.KindNaturalLanguage,
		Check: func(in Input) Result {
			text := in.Response.Text
			if !containsAny(text, DebugMarkers) {
				return pass(text)
			}
			first, _, _ := strings.Cut(text, "\n")
			first = strings.TrimSpace(first)
			if first == "" || utf8.RuneCountInString(first) < minSalvageRunes {
				return reject(CorrectionDebugLeak)
			}
			return pass(first)
		},
	}
}

// PrefixStrip removes a leading "ASK:" marker and the quotes around the question.
func PrefixStrip() Guard {
	return Guard{
		Name: NamePrefixStrip,
		Kind: model.KindNaturalLanguage,
		Check: func(in Input) Result {
			text := in.Response.Text
			if !strings.HasPrefix(text, askPrefix) {
				return pass(text)
			}
			text = strings.TrimSpace(strings.TrimPrefix(text, askPrefix))
			return pass(strings.TrimSpace(strings.Trim(text, `"`)))
		},
	}
}

// PayloadStrip cuts action objects embedded in prose that did not decode as a
// whole. It never rejects; an empty remainder becomes FallbackReply.
func PayloadStrip() Guard {
	return Guard{
		Name: NamePayloadStrip,
		Kind: model.KindNaturalLanguage,
		Check: func(in Input) Result {
			text := in.Response.Text
			if !parsers.LooksLikeAction(text) {
				return pass(text)
			}
			if text = strings.TrimSpace(parsers.StripActionPayloads(text)); text == "" {
				return pass(FallbackReply)
			}
			return pass(text)
		},
	}
}

// Prematurity rejects an unforced recommend while the conversation is short,
// whatever params the model claims.
func Prematurity(minHistory int) Guard {
	if minHistory <= 0 {
		minHistory = model.DefaultMinHistory
	}
	return Guard{
		Name: NamePrematurity,
		Kind: model.KindAction,
		Check: func(in Input) Result {
			if in.Response.Action.Name == model.ActionRecommend && !in.Forced && in.HistoryLen < minHistory {
				return reject(CorrectionPremature)
			}
			return pass(in.Response.Text)
		},
	}
}

// Hallucination authorizes recommend only against the slots the user
// actually filled; model params are ignored.
func Hallucination() Guard {
	return Guard{
		Name: NameHallucination,
		Kind: model.KindAction,
		Check: func(in Input) Result {
			if in.Response.Action.Name != model.ActionRecommend {
				return pass(in.Response.Text)
			}
			if missing := in.Slots.Missing(); len(missing) > 0 {
				return reject(HallucinationCorrection(missing))
			}
			return pass(in.Response.Text)
		},
	}
}

// UnauthorizedAction rejects every action other than recommend.
func UnauthorizedAction() Guard {
	return Guard{
		Name: NameUnauthorizedAction,
		Kind: model.KindAction,
		Check: func(in Input) Result {
			if in.Response.Action.Name != model.ActionRecommend {
				return reject(CorrectionUnauthorized)
			}
			return pass(in.Response.Text)
		},
	}
}

// HallucinationCorrection names the fields the user has not provided.
func HallucinationCorrection(missing []model.Slot) string {
	names := make([]string, len(missing))
	for i, s := range missing {
		names[i] = string(s)
	}
	return fmt.Sprintf(
		"SYSTEM: STOP. The user has NOT told you about: [%s]. You MUST ASK them first. Do NOT guess. Do NOT output JSON.",
		strings.Join(names, ", "),
	)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
