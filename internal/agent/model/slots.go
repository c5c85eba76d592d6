package model

// Slot names one of the four required profile fields.
type Slot string

const (
	SlotGoal       Slot = "goal"
	SlotLevel      Slot = "level"
	SlotSkills     Slot = "skills"
	SlotCareerPath Slot = "career_path"
)

// SlotOrder is the canonical order used for prompts and missing-item lists.
var SlotOrder = []Slot{SlotGoal, SlotLevel, SlotSkills, SlotCareerPath}

// Label is the human-readable name used in the state snapshot.
func (s Slot) Label() string {
	switch s {
	case SlotGoal:
		return "Goal"
	case SlotLevel:
		return "Level"
	case SlotSkills:
		return "Skills"
	case SlotCareerPath:
		return "Career Path"
	}
	return string(s)
}

// SlotSet holds the user's profile. An empty string means the slot is unset.
type SlotSet struct {
	Goal       string `json:"goal,omitempty"`
	Level      string `json:"level,omitempty"`
	Skills     string `json:"skills,omitempty"`
	CareerPath string `json:"career_path,omitempty"`
}

// SlotWrite is a single update produced by the extractor.
type SlotWrite struct {
	Slot  Slot
	Value string
}

func (s *SlotSet) Get(slot Slot) string {
	switch slot {
	case SlotGoal:
		return s.Goal
	case SlotLevel:
		return s.Level
	case SlotSkills:
		return s.Skills
	case SlotCareerPath:
		return s.CareerPath
	}
	return ""
}

// Set writes a non-empty value. Empty values are ignored so a slot, once set,
// can only be replaced, never cleared, outside of Reset.
func (s *SlotSet) Set(slot Slot, value string) {
	if value == "" {
		return
	}
	switch slot {
	case SlotGoal:
		s.Goal = value
	case SlotLevel:
		s.Level = value
	case SlotSkills:
		s.Skills = value
	case SlotCareerPath:
		s.CareerPath = value
	}
}

// Apply merges writes in order.
func (s *SlotSet) Apply(writes []SlotWrite) {
	for _, w := range writes {
		s.Set(w.Slot, w.Value)
	}
}

// Missing lists unset slots in canonical order.
func (s *SlotSet) Missing() []Slot {
	var missing []Slot
	for _, slot := range SlotOrder {
		if s.Get(slot) == "" {
			missing = append(missing, slot)
		}
	}
	return missing
}

// Filled counts populated slots.
func (s *SlotSet) Filled() int {
	return len(SlotOrder) - len(s.Missing())
}

// Complete reports whether all four slots are populated.
func (s *SlotSet) Complete() bool {
	return len(s.Missing()) == 0
}

// Reset clears every slot.
func (s *SlotSet) Reset() {
	*s = SlotSet{}
}
