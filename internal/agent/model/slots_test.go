package model

import "testing"

func TestSlotSet(t *testing.T) {
	var s SlotSet
	if s.Complete() || s.Filled() != 0 {
		t.Fatal("empty set should be incomplete")
	}
	if got := s.Missing(); len(got) != 4 || got[0] != SlotGoal || got[3] != SlotCareerPath {
		t.Errorf("missing order: %v", got)
	}

	s.Apply([]SlotWrite{
		{Slot: SlotCareerPath, Value: "Data Scientist"},
		{Slot: SlotLevel, Value: "Beginner"},
		{Slot: SlotLevel, Value: ""},
	})
	if s.Level != "Beginner" {
		t.Error("empty write must not clear a slot")
	}
	if got := s.Missing(); len(got) != 2 || got[0] != SlotGoal || got[1] != SlotSkills {
		t.Errorf("missing after writes: %v", got)
	}

	s.Set(SlotGoal, "Learn Data Science")
	s.Set(SlotSkills, "Python")
	if !s.Complete() || s.Filled() != 4 {
		t.Fatalf("expected complete: %+v", s)
	}
	if s.Get(SlotSkills) != "Python" || s.Get(Slot("unknown")) != "" {
		t.Error("get mismatch")
	}

	s.Reset()
	if s != (SlotSet{}) {
		t.Errorf("reset left %+v", s)
	}
}

func TestSlotLabel(t *testing.T) {
	tests := map[Slot]string{
		SlotGoal:       "Goal",
		SlotLevel:      "Level",
		SlotSkills:     "Skills",
		SlotCareerPath: "Career Path",
		Slot("other"):  "other",
	}
	for slot, want := range tests {
		if got := slot.Label(); got != want {
			t.Errorf("%s label: got %q, want %q", slot, got, want)
		}
	}
}
