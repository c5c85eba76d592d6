package extractors

import (
	"strings"
	"unicode"

	"github.com/career-counselor/server/internal/agent/model"
)

// careerRule maps trigger phrases to a career path and its learning goal.
type careerRule struct {
	phrases    []string
	careerPath string
	goal       string
}

// Ordered: the first matching rule wins.
var careerRules = []careerRule{
	{[]string{"web developer", "web development"}, "Web Developer", "Learn Web Development"},
	// "detached scientist" and "data size" are common transcription mishearings.
	{[]string{"data scientist", "data science", "detached scientist", "data size"}, "Data Scientist", "Learn Data Science"},
	{[]string{"ai engineer"}, "AI Engineer", "Learn AI"},
	{[]string{"software engineer", "software developer"}, "Software Engineer", "Learn Software Engineering"},
	{[]string{"team lead", "manager"}, "Manager", "Learn Leadership"},
	{[]string{"entrepreneur", "founder", "startup"}, "Entrepreneur", "Start a Business"},
	{[]string{"digital marketer", "marketer", "marketing"}, "Marketer", "Learn Marketing"},
	{[]string{"sales"}, "Sales", "Learn Sales"},
}

type levelRule struct {
	phrases []string
	level   string
}

var levelRules = []levelRule{
	{[]string{"beginner", "new", "scratch", "starting", "begin", "novice", "no experience"}, "Beginner"},
	{[]string{"intermediate"}, "Intermediate"},
	{[]string{"advanced"}, "Advanced"},
}

// knownSkills maps a lower-case token to its display form, in output order.
var knownSkills = []struct {
	token   string
	display string
}{
	{"python", "Python"},
	{"html", "HTML"},
	{"css", "CSS"},
	{"javascript", "JavaScript"},
	{"react", "React"},
	{"java", "Java"},
	{"tensorflow", "TensorFlow"},
	{"sql", "SQL"},
	{"git", "Git"},
	{"statistics", "Statistics"},
	{"math", "Math"},
}

var absenceTokens = map[string]bool{"no": true, "none": true, "nothing": true}

var negations = map[string]bool{"no": true, "not": true}

// SkillsNone is written when the user reports having no skills.
const SkillsNone = "none"

// Extract derives slot writes from one utterance. current is consulted only
// for the "no skills implies beginner" fallback, so the result is a pure
// function of its inputs.
func Extract(utterance string, current model.SlotSet) []model.SlotWrite {
	tokens := tokenize(utterance)
	if len(tokens) == 0 {
		return nil
	}
	joined := " " + strings.Join(tokens, " ")

	var writes []model.SlotWrite

	for _, rule := range careerRules {
		if matchesAny(joined, rule.phrases) {
			writes = append(writes,
				model.SlotWrite{Slot: model.SlotCareerPath, Value: rule.careerPath},
				model.SlotWrite{Slot: model.SlotGoal, Value: rule.goal},
			)
			break
		}
	}

	levelSet := false
	for _, rule := range levelRules {
		if matchesAny(joined, rule.phrases) {
			writes = append(writes, model.SlotWrite{Slot: model.SlotLevel, Value: rule.level})
			levelSet = true
			break
		}
	}

	if skills := findSkills(tokens); len(skills) > 0 {
		writes = append(writes, model.SlotWrite{Slot: model.SlotSkills, Value: strings.Join(skills, ", ")})
	} else if hasAny(tokens, absenceTokens) {
		writes = append(writes, model.SlotWrite{Slot: model.SlotSkills, Value: SkillsNone})
		if !levelSet && current.Level == "" {
			writes = append(writes, model.SlotWrite{Slot: model.SlotLevel, Value: "Beginner"})
		}
	}

	return writes
}

// Apply extracts from the utterance and merges the result into slots.
func Apply(slots *model.SlotSet, utterance string) []model.SlotWrite {
	writes := Extract(utterance, *slots)
	slots.Apply(writes)
	return writes
}

func findSkills(tokens []string) []string {
	present := make(map[string]bool, len(tokens))
	for i, tok := range tokens {
		if i > 0 && negations[tokens[i-1]] {
			continue
		}
		present[tok] = true
	}
	var out []string
	for _, s := range knownSkills {
		if present[s.token] {
			out = append(out, s.display)
		}
	}
	return out
}

// matchesAny reports whether any phrase starts at a token boundary of joined,
// which must be the space-prefixed token stream.
func matchesAny(joined string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(joined, " "+p) {
			return true
		}
	}
	return false
}

func hasAny(tokens []string, set map[string]bool) bool {
	for _, t := range tokens {
		if set[t] {
			return true
		}
	}
	return false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
