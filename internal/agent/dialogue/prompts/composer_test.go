package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/career-counselor/server/internal/agent/model"
)

func TestComposeMissing(t *testing.T) {
	c := NewComposer(model.PromptConfig{CounselorName: "Ada"})
	got, err := c.Compose(context.Background(), model.SlotSet{CareerPath: "Web Developer", Goal: "Learn Web Development"})
	if err != nil {
		t.Fatalf("compose: %v", err)
	}

	if !strings.HasPrefix(got, "You are Ada,") {
		t.Errorf("directive should start with the persona, got %q", got[:40])
	}
	for _, want := range []string{
		"Current State of Information:",
		"- Goal: Learn Web Development",
		"- Level: None",
		"- Skills: None",
		"- Career Path: Web Developer",
		"MISSING items: [level, skills]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("directive missing %q\n%s", want, got)
		}
	}
	if strings.Contains(got, StatusComplete) {
		t.Error("incomplete profile must not report complete status")
	}
}

func TestComposeComplete(t *testing.T) {
	c := NewComposer(model.PromptConfig{})
	slots := model.SlotSet{Goal: "Learn AI", Level: "Advanced", Skills: "Python", CareerPath: "AI Engineer"}
	got, err := c.Compose(context.Background(), slots)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	if !strings.HasSuffix(got, StatusComplete) {
		t.Errorf("expected complete status at the end, got %q", got)
	}
	if strings.Contains(got, "MISSING items:") {
		t.Error("complete profile must not list missing items")
	}
	if !strings.Contains(got, "You are Genevieve,") {
		t.Error("empty name should fall back to the default persona")
	}
}

func TestComposeIsSnapshot(t *testing.T) {
	c := NewComposer(model.PromptConfig{})
	ctx := context.Background()

	first, err := c.Compose(ctx, model.SlotSet{Level: "Beginner"})
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.Compose(ctx, model.SlotSet{Level: "Beginner"})
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("same slots must render the same directive")
	}
	if n := strings.Count(second, "Current State of Information:"); n != 1 {
		t.Errorf("expected exactly one state block, got %d", n)
	}
}

func TestRenderExplain(t *testing.T) {
	got := RenderExplain([]model.Course{{ID: "py-101", Title: "Python for Beginners", URL: "https://example.com/py"}})
	for _, want := range []string{`"id":"py-101"`, Transition, "Do NOT output JSON"} {
		if !strings.Contains(got, want) {
			t.Errorf("explain prompt missing %q", want)
		}
	}
	if strings.Contains(got, "{courses}") || strings.Contains(got, "{transition}") {
		t.Error("placeholders left unrendered")
	}
}

func TestGreeting(t *testing.T) {
	want := "Hello! I am Genevieve, your Career Counselor. What would you like to learn today?"
	if got := Greeting(model.PromptConfig{}); got != want {
		t.Errorf("default greeting: got %q", got)
	}
	if got := Greeting(model.PromptConfig{CounselorName: "Ada"}); !strings.Contains(got, "I am Ada,") {
		t.Errorf("custom greeting: got %q", got)
	}
}
