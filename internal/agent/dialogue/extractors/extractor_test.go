package extractors

import (
	"reflect"
	"testing"

	"github.com/career-counselor/server/internal/agent/model"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name  string
		start model.SlotSet
		input string
		want  model.SlotSet
	}{
		{
			name:  "full profile in one utterance",
			input: "I want to be a Data Scientist, I'm a beginner, I know Python, nothing else.",
			want: model.SlotSet{
				Goal:       "Learn Data Science",
				Level:      "Beginner",
				Skills:     "Python",
				CareerPath: "Data Scientist",
			},
		},
		{
			name:  "web developer",
			input: "I want to be a web developer",
			want:  model.SlotSet{Goal: "Learn Web Development", CareerPath: "Web Developer"},
		},
		{
			name:  "misheard data science",
			input: "I'd like to become a detached scientist",
			want:  model.SlotSet{Goal: "Learn Data Science", CareerPath: "Data Scientist"},
		},
		{
			name:  "first career rule wins",
			input: "web development or maybe ai engineer",
			want:  model.SlotSet{Goal: "Learn Web Development", CareerPath: "Web Developer"},
		},
		{
			name:  "intermediate level",
			input: "I'm at an intermediate level",
			want:  model.SlotSet{Level: "Intermediate"},
		},
		{
			name:  "beginner prefix match",
			input: "I am just beginning",
			want:  model.SlotSet{Level: "Beginner"},
		},
		{
			name:  "knew is not new",
			input: "I knew it",
			want:  model.SlotSet{},
		},
		{
			name:  "multiple skills in display order",
			input: "I know sql, javascript and html",
			want:  model.SlotSet{Skills: "HTML, JavaScript, SQL"},
		},
		{
			name:  "java is not javascript",
			input: "only javascript",
			want:  model.SlotSet{Skills: "JavaScript"},
		},
		{
			name:  "negated skill skipped",
			input: "I know css but not python",
			want:  model.SlotSet{Skills: "CSS"},
		},
		{
			name:  "no skills infers beginner",
			input: "none",
			want:  model.SlotSet{Skills: "none", Level: "Beginner"},
		},
		{
			name:  "no skills keeps existing level",
			start: model.SlotSet{Level: "Advanced"},
			input: "nothing really",
			want:  model.SlotSet{Skills: "none", Level: "Advanced"},
		},
		{
			name:  "set slot survives unrelated utterance",
			start: model.SlotSet{Goal: "Learn AI", CareerPath: "AI Engineer"},
			input: "hmm let me think",
			want:  model.SlotSet{Goal: "Learn AI", CareerPath: "AI Engineer"},
		},
		{
			name:  "career switch replaces",
			start: model.SlotSet{Goal: "Learn AI", CareerPath: "AI Engineer"},
			input: "actually web development",
			want:  model.SlotSet{Goal: "Learn Web Development", CareerPath: "Web Developer"},
		},
		{
			name:  "empty utterance",
			input: "   ",
			want:  model.SlotSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := tt.start
			Apply(&slots, tt.input)
			if slots != tt.want {
				t.Errorf("got %+v, want %+v", slots, tt.want)
			}
		})
	}
}

func TestExtractIdempotent(t *testing.T) {
	inputs := []string{
		"I want to be a Data Scientist, I'm a beginner, I know Python, nothing else.",
		"no",
		"I know a little bit of math but no coding.",
		"I'm an advanced react developer aiming for web development",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			var start model.SlotSet
			first := Extract(in, start)
			second := Extract(in, start)
			if !reflect.DeepEqual(first, second) {
				t.Fatalf("writes differ: %+v vs %+v", first, second)
			}

			once := start
			Apply(&once, in)
			twice := once
			Apply(&twice, in)
			if once != twice {
				t.Errorf("reapplying changed slots: %+v vs %+v", once, twice)
			}
		})
	}
}
